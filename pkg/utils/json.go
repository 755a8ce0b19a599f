package utils

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa com indentação; []byte é tratado como JSON já serializado
func PrettyJson(in any) (string, error) {
	raw, ok := in.([]byte)
	if !ok {
		var err error
		raw, err = json.Marshal(in)
		if err != nil {
			return "", err
		}
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return "", err
	}

	out, err := json.MarshalIndent(decoded, "", "  ")
	if err != nil {
		return "", err
	}

	return string(out), nil
}
