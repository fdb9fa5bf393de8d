package elastic

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/edo-marketplace-admin/internal/domain/entity"
)

// ActivityIndex stores the admin audit trail in an Elasticsearch index.
type ActivityIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewActivityIndex(es *elasticsearch.Client, index string) *ActivityIndex {
	return &ActivityIndex{ES: es, Index: index}
}

// Record indexes a single activity document under its id.
func (a *ActivityIndex) Record(ctx context.Context, act entity.Activity) error {
	b, err := json.Marshal(act)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: a.Index, DocumentID: act.ID, Body: bytes.NewReader(b), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := req.Do(c, a.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("es index: %s", res.Status())
	}
	return nil
}

// Search runs a multi_match over action, entity, id and detail, newest first.
// An empty query matches everything.
func (a *ActivityIndex) Search(ctx context.Context, q string, size int) ([]entity.Activity, error) {
	if size <= 0 || size > 100 {
		size = 20
	}
	var query map[string]any
	if strings.TrimSpace(q) == "" {
		query = map[string]any{"match_all": map[string]any{}}
	} else {
		query = map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"action^2", "entity", "entityId", "detail"},
			},
		}
	}
	body := map[string]any{
		"query": query,
		"size":  size,
		"sort":  []any{map[string]any{"at": map[string]any{"order": "desc"}}},
	}
	b, _ := json.Marshal(body)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := a.ES.Search(a.ES.Search.WithContext(c), a.ES.Search.WithIndex(a.Index), a.ES.Search.WithBody(bytes.NewReader(b)))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		return nil, fmt.Errorf("es search: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID     string          `json:"_id"`
				Source entity.Activity `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Activity, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
