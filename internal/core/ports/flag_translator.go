package ports

import "go.trai.ch/runx/internal/core/domain"

// FlagTranslator turns task run options into interpreter command-line flags.
//
//go:generate mockgen -source=flag_translator.go -destination=mocks/mock_flag_translator.go -package=mocks
type FlagTranslator interface {
	Translate(opts domain.Options) ([]string, error)
}
