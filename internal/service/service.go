package service

import (
	"grimoire/browser/internal/client"
)

// Service shapes Grimoire API data for the pages and commands. It holds no
// state between calls; every call fetches afresh.
type Service struct {
	client    client.GrimoireClient
	unitLimit int
}

// NewService wraps client. unitLimit caps unit list requests and defaults to 100.
func NewService(client client.GrimoireClient, unitLimit int) *Service {
	if unitLimit <= 0 {
		unitLimit = 100
	}
	return &Service{
		client:    client,
		unitLimit: unitLimit,
	}
}

// Client exposes the underlying data client for reads that need no shaping,
// such as the game system and the catalogue list.
func (s *Service) Client() client.GrimoireClient {
	return s.client
}
