// Command tljson-demo initializes the codec over the bundled type
// universe, reports the duplicate short names, round-trips a sample
// message, and prints its encoded form. With REDIS_ADDR set it also
// archives the dump and reads it back.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/telegram-toys/tljson"
	"github.com/telegram-toys/tljson/tl/tltest"
)

// zeroLogger adapts a zerolog.Logger to the tljson.Logger interface.
type zeroLogger struct {
	l zerolog.Logger
}

func (z zeroLogger) Info(msg string, kv ...any)  { z.emit(z.l.Info(), msg, kv) }
func (z zeroLogger) Warn(msg string, kv ...any)  { z.emit(z.l.Warn(), msg, kv) }
func (z zeroLogger) Error(msg string, kv ...any) { z.emit(z.l.Error(), msg, kv) }
func (z zeroLogger) Debug(msg string, kv ...any) { z.emit(z.l.Debug(), msg, kv) }

func (zeroLogger) emit(ev *zerolog.Event, msg string, kv []any) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := kv[i].(string)
		if !ok {
			key = fmt.Sprint(kv[i])
		}
		ev = ev.Interface(key, kv[i+1])
	}
	ev.Msg(msg)
}

func run() error {
	logger := zeroLogger{l: zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()}

	logger.Info("tljson-demo", "version", tljson.Version())

	codec := tljson.New(tljson.Config{Logger: logger})
	if err := codec.Initialize(); err != nil {
		return err
	}
	if err := codec.ReportDuplicateShortNames(); err != nil {
		return err
	}

	msg := tltest.SampleMessage()
	dump, err := codec.Encode(msg, tljson.EncodeOptions{Indent: 2})
	if err != nil {
		return err
	}
	fmt.Println(dump)

	if !codec.CheckRoundTrip(msg) {
		return fmt.Errorf("round-trip check failed")
	}

	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		ctx := context.Background()
		arc, err := tljson.NewArchive(ctx, tljson.ArchiveConfig{
			RedisAddr: addr,
			Logger:    logger,
		})
		if err != nil {
			return err
		}
		defer arc.Close()

		key, err := arc.SaveObject(ctx, codec, "demo:1001", msg)
		if err != nil {
			return err
		}
		restored, err := arc.LoadObject(ctx, codec, key)
		if err != nil {
			return err
		}
		logger.Info("archived and restored", "key", key, "id", tljson.TypeID(restored))
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tljson-demo:", err)
		os.Exit(1)
	}
}
