// Copyright (c) 2019-present Mattermost, Inc. All Rights Reserved.
// See License for license information.

package httputils

import (
	"encoding/json"
	"io"
	"net/http"
)

const InLimit = 10 * (1 << 20)

// WriteJSONStatus encodes and writes out an object, with a custom response
// status code.
func WriteJSONStatus(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// WriteJSON encodes and writes out an object, with a 200 response status code.
func WriteJSON(w http.ResponseWriter, v interface{}) error {
	return WriteJSONStatus(w, http.StatusOK, v)
}

func LimitReadAll(in io.Reader, limit int64) ([]byte, error) {
	if in == nil {
		return []byte{}, nil
	}
	return io.ReadAll(&io.LimitedReader{R: in, N: limit})
}

// DecodeJSON reads at most InLimit bytes of in and decodes them into out.
func DecodeJSON(in io.Reader, out interface{}) error {
	data, err := LimitReadAll(in, InLimit)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, out)
}
