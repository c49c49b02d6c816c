package domain

// SyncFailure registra um registro que não pôde ser normalizado ou gravado
type SyncFailure struct {
	ExternalID string `json:"externalId"`
	Reason     string `json:"reason"`
}

// SyncResult é o relatório de uma execução de sincronização
type SyncResult struct {
	Source  Source        `json:"source"`
	Created int           `json:"created"`
	Updated int           `json:"updated"`
	Total   int           `json:"total"`
	Failed  []SyncFailure `json:"failed"`
}

// SyncQuery são os filtros de paginação/data repassados ao provedor sem alteração
type SyncQuery map[string]string
