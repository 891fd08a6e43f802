package catalogclient

import (
	"encoding/json"
	"strings"
)

// flexibleID decodes the product identifier, which the legacy API serves
// as a bare number while newer backends serve an opaque string.
type flexibleID string

func (f *flexibleID) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*f = ""
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexibleID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexibleID(n.String())
	return nil
}

// imageList decodes the additional-images field, which the legacy API
// serves either as a JSON array of URLs or as a single comma-separated
// string. Empty entries are dropped either way.
type imageList []string

func (l *imageList) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" || trimmed == "null" {
		*l = nil
		return nil
	}

	if strings.HasPrefix(trimmed, "[") {
		var urls []string
		if err := json.Unmarshal(data, &urls); err != nil {
			return err
		}
		*l = cleanImageList(urls)
		return nil
	}

	var joined string
	if err := json.Unmarshal(data, &joined); err != nil {
		return err
	}
	*l = cleanImageList(strings.Split(joined, ","))
	return nil
}

func cleanImageList(urls []string) imageList {
	cleaned := make(imageList, 0, len(urls))
	for _, u := range urls {
		if t := strings.TrimSpace(u); t != "" {
			cleaned = append(cleaned, t)
		}
	}
	if len(cleaned) == 0 {
		return nil
	}
	return cleaned
}
