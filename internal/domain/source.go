package domain

import (
	"fmt"
	"strings"
)

// Source identifica um provedor contábil externo suportado.
type Source string

const (
	SourceAlegra Source = "alegra"
	SourceSiigo  Source = "siigo"
)

// Sources lista o conjunto fechado de provedores suportados.
var Sources = []Source{SourceAlegra, SourceSiigo}

// ParseSource converte o nome recebido na borda (rota, query) em um Source conhecido.
// A comparação ignora maiúsculas/minúsculas e espaços.
func ParseSource(raw string) (Source, error) {
	name := strings.ToLower(strings.TrimSpace(raw))
	for _, s := range Sources {
		if string(s) == name {
			return s, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownProvider, raw)
}

func (s Source) String() string {
	return string(s)
}
