package adapter

import (
	"context"
	"encoding/xml"
	"fmt"

	"github.com/dkotenko/abook/models"
)

// acResponse is the autocomplete XML envelope: a flat list of <match>
// elements whose every value is a string attribute.
type acResponse struct {
	XMLName xml.Name  `xml:"AutoCompleteResponse"`
	Matches []acMatch `xml:"match"`
}

type acMatch struct {
	Email    string `xml:"email,attr"`
	First    string `xml:"first,attr"`
	Last     string `xml:"last,attr"`
	Middle   string `xml:"middle,attr"`
	Nickname string `xml:"nickname,attr"`
	Company  string `xml:"company,attr"`
	FileAs   string `xml:"fileas,attr"`
	Full     string `xml:"full,attr"`
	Type     string `xml:"type,attr"`
	Ranking  string `xml:"ranking,attr"`
	ID       string `xml:"id,attr"`
	FolderID string `xml:"l,attr"`
	IsGroup  string `xml:"isGroup,attr"`
}

// AutoComplete implements [Channel]. The isGroup attribute is "1" for
// group matches and absent otherwise; any other value is not a group.
func (h *httpChannel) AutoComplete(ctx context.Context, query string) ([]models.AutoCompleteMatch, error) {
	if err := h.ensureToken(); err != nil {
		return nil, err
	}

	resp, err := h.request(ctx).
		SetQueryParam("name", query).
		Get("/api/autocomplete")
	if err != nil {
		return nil, fmt.Errorf("autocomplete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	matches, err := parseAutoCompleteXML(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("autocomplete decode response: %w", err)
	}
	return matches, nil
}

func parseAutoCompleteXML(body []byte) ([]models.AutoCompleteMatch, error) {
	var envelope acResponse
	if err := xml.Unmarshal(body, &envelope); err != nil {
		return nil, err
	}

	out := make([]models.AutoCompleteMatch, 0, len(envelope.Matches))
	for _, m := range envelope.Matches {
		out = append(out, models.AutoCompleteMatch{
			Email:     m.Email,
			First:     m.First,
			Last:      m.Last,
			Middle:    m.Middle,
			Nickname:  m.Nickname,
			Company:   m.Company,
			FileAs:    m.FileAs,
			FullName:  m.Full,
			Type:      m.Type,
			Ranking:   m.Ranking,
			ContactID: m.ID,
			FolderID:  m.FolderID,
			IsGroup:   m.IsGroup == "1",
		})
	}
	return out, nil
}
