package formatters

import (
	"encoding/json"

	"github.com/incpath/incpath/resolver"
)

// JSONFormatter renders a resolution result as indented JSON.
type JSONFormatter struct{}

// Format converts the result to JSON.
func (f *JSONFormatter) Format(res *resolver.Result) (string, error) {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data) + "\n", nil
}
