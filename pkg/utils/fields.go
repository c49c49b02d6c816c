package utils

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Record é um registro cru decodificado do JSON de um provedor
type Record map[string]any

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"2006-01-02T15:04:05",
}

// FirstString retorna o primeiro campo não vazio entre as chaves, convertido para string
func FirstString(rec Record, keys ...string) string {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		if s := toString(v); s != "" {
			return s
		}
	}
	return ""
}

// FirstCode aceita tanto "COP" quanto {"code": "COP"}
func FirstCode(rec Record, keys ...string) string {
	for _, key := range keys {
		if nested, ok := rec[key].(map[string]any); ok {
			if s := FirstString(nested, "code", "id"); s != "" {
				return s
			}
			continue
		}
		if s := FirstString(rec, key); s != "" {
			return s
		}
	}
	return ""
}

// listas de strings (ex.: ["Juan", "Perez"]) são unidas com espaço
func toString(v any) string {
	if list, ok := v.([]any); ok {
		parts := make([]string, 0, len(list))
		for _, item := range list {
			if s := toString(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " ")
	}

	s, err := cast.ToStringE(v)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(s)
}

// FirstNumber retorna o primeiro campo numérico entre as chaves; ausente vale 0
func FirstNumber(rec Record, keys ...string) float64 {
	for _, key := range keys {
		v, ok := rec[key]
		if !ok || v == nil {
			continue
		}
		f, err := cast.ToFloat64E(v)
		if err != nil {
			continue
		}
		return f
	}
	return 0
}

// FirstTime retorna a primeira data válida entre as chaves
func FirstTime(rec Record, keys ...string) (time.Time, bool) {
	for _, key := range keys {
		s := FirstString(rec, key)
		if s == "" {
			continue
		}
		if t, ok := ParseTime(s); ok {
			return t, true
		}
	}
	return time.Time{}, false
}

// FirstRecord retorna o primeiro objeto aninhado entre as chaves
func FirstRecord(rec Record, keys ...string) Record {
	for _, key := range keys {
		if m, ok := rec[key].(map[string]any); ok && len(m) > 0 {
			return m
		}
	}
	return Record{}
}

// Records retorna a lista de objetos da chave, ignorando itens que não são objetos
func Records(rec Record, keys ...string) []Record {
	for _, key := range keys {
		list, ok := rec[key].([]any)
		if !ok {
			continue
		}
		out := make([]Record, 0, len(list))
		for _, item := range list {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	}
	return nil
}

func ParseTime(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
