// CareerPath - Skill-Based Career Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/careerpath

package logging

import (
	"context"
	"log/slog"

	"github.com/rs/zerolog"
)

// slogHandler writes slog records through zerolog. The supervisor tree
// (sutureslog) only speaks slog.
type slogHandler struct {
	logger zerolog.Logger
	// prefix is the dotted group path applied to attributes added from now on.
	prefix string
	// fields holds WithAttrs attributes already resolved to their full key.
	fields []prefixedAttr
}

type prefixedAttr struct {
	prefix string
	attr   slog.Attr
}

// NewSlogHandler returns an slog.Handler that writes to logger.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewSlogHandler(logger zerolog.Logger) slog.Handler {
	return &slogHandler{logger: logger}
}

// SupervisorLogger returns the slog logger handed to the supervisor tree.
// Its lines carry component=supervisor.
func SupervisorLogger() *slog.Logger {
	return slog.New(NewSlogHandler(WithComponent("supervisor")))
}

func (h *slogHandler) Enabled(_ context.Context, level slog.Level) bool {
	lvl := zerologLevel(level)
	return lvl >= h.logger.GetLevel() && lvl >= zerolog.GlobalLevel()
}

//nolint:gocritic // slog.Record is passed by value per slog.Handler interface
func (h *slogHandler) Handle(_ context.Context, record slog.Record) error {
	event := h.logger.WithLevel(zerologLevel(record.Level))
	if event == nil {
		return nil
	}
	for _, f := range h.fields {
		writeAttr(event, f.prefix, f.attr)
	}
	record.Attrs(func(a slog.Attr) bool {
		writeAttr(event, h.prefix, a)
		return true
	})
	event.Msg(record.Message)
	return nil
}

func (h *slogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	fields := make([]prefixedAttr, 0, len(h.fields)+len(attrs))
	fields = append(fields, h.fields...)
	for _, a := range attrs {
		fields = append(fields, prefixedAttr{prefix: h.prefix, attr: a})
	}
	return &slogHandler{logger: h.logger, prefix: h.prefix, fields: fields}
}

func (h *slogHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return &slogHandler{logger: h.logger, prefix: h.prefix + name + ".", fields: h.fields}
}

func writeAttr(event *zerolog.Event, prefix string, a slog.Attr) {
	v := a.Value.Resolve()
	if a.Key == "" && v.Kind() != slog.KindGroup {
		return
	}
	key := prefix + a.Key

	switch v.Kind() {
	case slog.KindString:
		event.Str(key, v.String())
	case slog.KindInt64:
		event.Int64(key, v.Int64())
	case slog.KindUint64:
		event.Uint64(key, v.Uint64())
	case slog.KindFloat64:
		event.Float64(key, v.Float64())
	case slog.KindBool:
		event.Bool(key, v.Bool())
	case slog.KindDuration:
		event.Dur(key, v.Duration())
	case slog.KindTime:
		event.Time(key, v.Time())
	case slog.KindGroup:
		// An empty group key inlines its members.
		nested := prefix
		if a.Key != "" {
			nested = key + "."
		}
		for _, ga := range v.Group() {
			writeAttr(event, nested, ga)
		}
	default:
		if err, ok := v.Any().(error); ok {
			event.AnErr(key, err)
			return
		}
		event.Interface(key, v.Any())
	}
}

func zerologLevel(level slog.Level) zerolog.Level {
	switch {
	case level >= slog.LevelError:
		return zerolog.ErrorLevel
	case level >= slog.LevelWarn:
		return zerolog.WarnLevel
	case level >= slog.LevelInfo:
		return zerolog.InfoLevel
	case level >= slog.LevelDebug:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}
