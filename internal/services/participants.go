package services

import "encoding/json"

// encodeParticipants serializes the ordered participant list to the JSON
// array text blob stored in the participants column.
func encodeParticipants(participants []string) string {
	if participants == nil {
		participants = []string{}
	}
	b, err := json.Marshal(participants)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// decodeParticipants restores the ordered list from the stored blob.
// A NULL, empty, or malformed blob decodes to an empty list.
func decodeParticipants(raw *string) []string {
	if raw == nil || *raw == "" {
		return []string{}
	}

	var participants []string
	if err := json.Unmarshal([]byte(*raw), &participants); err != nil {
		return []string{}
	}
	if participants == nil {
		return []string{}
	}
	return participants
}
