package logger_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/runx/internal/adapters/logger"
	"go.trai.ch/runx/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		wantMessages []string
		wantMetadata []map[string]any
	}{
		{
			name:         "single standard error",
			err:          errors.New("simple error"),
			wantMessages: []string{"simple error"},
			wantMetadata: []map[string]any{nil},
		},
		{
			name:         "zerr single error",
			err:          zerr.New("zerr error"),
			wantMessages: []string{"zerr error"},
			wantMetadata: []map[string]any{{}},
		},
		{
			name:         "zerr wrapped chain",
			err:          zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer"),
			wantMessages: []string{"outer layer", "middle layer", "root cause"},
			wantMetadata: []map[string]any{{}, {}, nil},
		},
		{
			name:         "zerr with metadata",
			err:          zerr.With(zerr.With(zerr.New("base error"), "key1", "value1"), "key2", 42),
			wantMessages: []string{"base error"},
			wantMetadata: []map[string]any{{"key1": "value1", "key2": 42}},
		},
		{
			name: "metadata on a standard error joins the previous entry",
			err: zerr.Wrap(
				zerr.With(errors.New("exit status 2"), "exit_code", 2),
				"task failed",
			),
			wantMessages: []string{"task failed", "exit status 2"},
			wantMetadata: []map[string]any{{"exit_code": 2}, nil},
		},
		{
			name:         "leading metadata-only link moves to the next entry",
			err:          zerr.With(fmt.Errorf("plain: %w", zerr.New("inner")), "k", "v"),
			wantMessages: []string{"plain: inner"},
			wantMetadata: []map[string]any{{"k": "v"}},
		},
		{
			name: "load error",
			err: &domain.LoadError{
				Kind:       domain.LoadNotFound,
				Candidates: []string{"runx.lua", "runx.yml"},
				Err:        errors.New("no file"),
			},
			wantMessages: []string{"workspace file not found", "no file"},
			wantMetadata: []map[string]any{{"candidates": "runx.lua, runx.yml"}, nil},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := logger.CollectErrorEntries(tt.err)

			messages := make([]string, 0, len(entries))
			metadata := make([]map[string]any, 0, len(entries))
			for _, e := range entries {
				messages = append(messages, e.Message)
				metadata = append(metadata, e.Metadata)
			}
			assert.Equal(t, tt.wantMessages, messages)
			assert.Equal(t, tt.wantMetadata, metadata)
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "single entry",
			entries: []logger.ErrorEntry{{Message: "boom"}},
			want:    "Error: boom",
		},
		{
			name:    "multiline message",
			entries: []logger.ErrorEntry{{Message: "first\nsecond"}},
			want:    "Error: first\n       second",
		},
		{
			name: "cause with metadata",
			entries: []logger.ErrorEntry{
				{Message: "outer", Metadata: map[string]any{"task": "build"}},
				{Message: "inner", Metadata: map[string]any{"b": 2, "a": 1}},
			},
			want: "Error: outer\n" +
				"       task: build\n" +
				"\n" +
				"  Caused by:\n" +
				"    → inner\n" +
				"      a: 1\n" +
				"      b: 2",
		},
		{
			name: "several causes share one header",
			entries: []logger.ErrorEntry{
				{Message: "one"},
				{Message: "two"},
				{Message: "three"},
			},
			want: "Error: one\n\n  Caused by:\n    → two\n    → three",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntries(tt.entries))
		})
	}
}
