package domain

import (
	"strings"
	"time"
)

// UserID é a representação canônica do dono de um negócio
type UserID string

// Credentials é o conjunto opaco de credenciais de um provedor.
// Provedores de chave estática usam Email/APIKey; provedores de token usam AccessToken/ExpiresAt.
type Credentials struct {
	Email       string     `json:"email,omitempty"`
	APIKey      string     `json:"apiKey,omitempty"`
	AccessToken string     `json:"accessToken,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// Connection é a conexão de um negócio com um provedor, embutida no Business
type Connection struct {
	Source      Source      `json:"source"`
	Credentials Credentials `json:"credentials"`
	IsActive    bool        `json:"isActive"`
	LastSync    *time.Time  `json:"lastSync"`
}

// Business é a raiz do agregado que possui as conexões
type Business struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	OwnerID           UserID        `json:"owner"`
	SourceConnections []*Connection `json:"sourceConnections"`
	Version           int           `json:"-"`
	CreatedAt         time.Time     `json:"createdAt"`
	UpdatedAt         time.Time     `json:"updatedAt"`
}

// IsOwnedBy compara o dono do negócio com a identidade autenticada
func (b *Business) IsOwnedBy(userID UserID) bool {
	return b != nil && userID != "" && b.OwnerID == userID
}

// Connection retorna a conexão do provedor, ou nil
func (b *Business) Connection(source Source) *Connection {
	for _, c := range b.SourceConnections {
		if c == nil {
			continue
		}
		if strings.EqualFold(string(c.Source), string(source)) {
			return c
		}
	}
	return nil
}

// ActiveConnection retorna a conexão do provedor apenas se estiver ativa
func (b *Business) ActiveConnection(source Source) *Connection {
	conn := b.Connection(source)
	if conn == nil || !conn.IsActive {
		return nil
	}
	return conn
}

// UpsertConnection grava as credenciais no lugar (nunca duplica a conexão do provedor).
// Substituir credenciais sempre reativa a conexão e zera lastSync.
func (b *Business) UpsertConnection(source Source, credentials Credentials) *Connection {
	if conn := b.Connection(source); conn != nil {
		conn.Credentials = credentials
		conn.IsActive = true
		conn.LastSync = nil
		return conn
	}

	conn := &Connection{
		Source:      source,
		Credentials: credentials,
		IsActive:    true,
	}
	b.SourceConnections = append(b.SourceConnections, conn)
	return conn
}

// ConnectionView é a visão de uma conexão sem credenciais
type ConnectionView struct {
	Source   Source     `json:"source"`
	IsActive bool       `json:"isActive"`
	LastSync *time.Time `json:"lastSync"`
}

// BusinessView é a visão do negócio devolvida para fora do núcleo
type BusinessView struct {
	ID                string           `json:"id"`
	Name              string           `json:"name"`
	OwnerID           UserID           `json:"owner"`
	SourceConnections []ConnectionView `json:"sourceConnections"`
	CreatedAt         time.Time        `json:"createdAt"`
	UpdatedAt         time.Time        `json:"updatedAt"`
}

// View remove as credenciais de todas as conexões
func (c *Connection) View() ConnectionView {
	return ConnectionView{
		Source:   c.Source,
		IsActive: c.IsActive,
		LastSync: c.LastSync,
	}
}

func (b *Business) Redacted() *BusinessView {
	view := &BusinessView{
		ID:                b.ID,
		Name:              b.Name,
		OwnerID:           b.OwnerID,
		SourceConnections: make([]ConnectionView, 0, len(b.SourceConnections)),
		CreatedAt:         b.CreatedAt,
		UpdatedAt:         b.UpdatedAt,
	}
	for _, c := range b.SourceConnections {
		if c == nil {
			continue
		}
		view.SourceConnections = append(view.SourceConnections, c.View())
	}
	return view
}

// AuthParams é o conjunto de parâmetros de autenticação específico de cada provedor
type AuthParams map[string]any

// AuthMeta descreve o resultado da autenticação sem expor credenciais
type AuthMeta struct {
	Provider  Source     `json:"provider"`
	Type      string     `json:"type"`
	Validated bool       `json:"validated"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

// AuthResult é o retorno de uma estratégia de autenticação
type AuthResult struct {
	Credentials Credentials
	Meta        AuthMeta
}

// AuthenticateResponse é o retorno do orquestrador para a borda HTTP
type AuthenticateResponse struct {
	Business *BusinessView `json:"business"`
	Meta     AuthMeta      `json:"meta"`
}
