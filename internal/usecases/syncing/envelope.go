package syncing

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ledger-integrations-api/internal/domain"
	"github.com/vfg2006/ledger-integrations-api/pkg/utils"
)

// números ficam como json.Number para não perder precisão em ids grandes
var json = jsoniter.Config{
	EscapeHTML:             true,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
	UseNumber:              true,
}.Froze()

// chaves de envelope conhecidas, na ordem de preferência
var envelopeKeys = []string{"data", "invoices", "sales", "results"}

// UnwrapList aceita um array puro ou um objeto com a lista em uma das chaves conhecidas.
// A primeira forma que contém um array vence.
func UnwrapList(body []byte) ([]utils.Record, error) {
	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domain.ErrBadPayloadShape
	}

	switch v := payload.(type) {
	case []any:
		return toRecords(v), nil
	case map[string]any:
		for _, key := range envelopeKeys {
			if list, ok := v[key].([]any); ok {
				return toRecords(list), nil
			}
		}
	}

	return nil, domain.ErrBadPayloadShape
}

// itens que não são objetos viram registros vazios e falham na normalização
func toRecords(list []any) []utils.Record {
	records := make([]utils.Record, 0, len(list))
	for _, item := range list {
		rec, _ := item.(map[string]any)
		if rec == nil {
			rec = map[string]any{}
		}
		records = append(records, rec)
	}
	return records
}
