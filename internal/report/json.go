package report

import (
	"encoding/json"
	"io"
)

func WriteJSON(w io.Writer, payload interface{}) error {
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
