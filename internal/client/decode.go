package client

import (
	"encoding/json"
	"fmt"
	"strings"

	"grimoire/browser/internal/domain"

	"github.com/PuerkitoBio/goquery"
	log "github.com/sirupsen/logrus"
)

// envelope is the {"data": ...} wrapper every successful response carries.
type envelope struct {
	Data any `json:"data"`
}

// errorBody is the {"error": ..., "message": ...} shape of failed responses.
type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func decode(body string, out any) error {
	if strings.TrimSpace(body) == "" {
		return fmt.Errorf("empty response body")
	}
	return json.Unmarshal([]byte(body), out)
}

// normalizeUnit flattens markup in ability descriptions to plain text.
func normalizeUnit(unit *domain.Unit) {
	if unit.Profiles == nil {
		return
	}
	for i := range unit.Profiles.Abilities {
		unit.Profiles.Abilities[i].Description = plainText(unit.Profiles.Abilities[i].Description)
	}
}

func normalizeSearchResults(results *domain.SearchResults) {
	for i := range results.Results {
		results.Results[i].Summary = plainText(results.Results[i].Summary)
	}
}

// plainText returns the text content of s when it contains HTML markup.
func plainText(s string) string {
	if !strings.Contains(s, "<") {
		return strings.TrimSpace(s)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		log.Debugf("Failed to parse markup, keeping raw text: %v", err)
		return strings.TrimSpace(s)
	}

	doc.Find("br").ReplaceWithHtml("\n")
	return strings.TrimSpace(doc.Text())
}
