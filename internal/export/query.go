package export

import (
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
	"github.com/ukydev/trip-planner/internal/models"
)

// Query evaluates a JSONPath expression against the document as it is
// persisted, e.g. "$.days[*].events[?(@.type=='food')].title".
func Query(doc *models.TripDocument, expr string) (interface{}, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal trip document: %w", err)
	}
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode trip document: %w", err)
	}
	out, err := jsonpath.Get(expr, v)
	if err != nil {
		return nil, fmt.Errorf("evaluate %q: %w", expr, err)
	}
	return out, nil
}
