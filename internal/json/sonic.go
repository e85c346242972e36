//go:build sonic
// +build sonic

package json

import "github.com/bytedance/sonic"

var api = sonic.ConfigStd

var (
	Marshal       = api.Marshal
	Unmarshal     = api.Unmarshal
	MarshalIndent = api.MarshalIndent
	NewDecoder    = api.NewDecoder
	NewEncoder    = api.NewEncoder
)
