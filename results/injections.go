package results

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwinfer/postplot/common"
	"github.com/gwinfer/postplot/model"
	"github.com/gwinfer/postplot/utils"
	"go.uber.org/zap"
)

// LoadInjections reads the injection truth table for one result file.
// The table lives either in a companion file named by the result's
// injection_file field (resolved relative to the result's directory) or
// inline under the result's own injections tree. group is a slash
// separated path into the nested document, e.g. "H1/injections".
func LoadInjections(ctx context.Context, resultPath, group string) (*model.InjectionSet, error) {
	logger := utils.GetLogger(ctx)

	doc, err := readDoc(resultPath)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	switch {
	case doc.InjectionFile != "":
		path := doc.InjectionFile
		if !filepath.IsAbs(path) {
			path = filepath.Join(filepath.Dir(resultPath), path)
		}
		raw, err = readRaw(path)
		if err != nil {
			return nil, err
		}
		logger.Info("loaded injection file", zap.String("path", path))
	case len(doc.Injections) > 0:
		raw = doc.Injections
	default:
		return nil, fmt.Errorf("%w: %v", common.ErrorNoInjections, resultPath)
	}

	values, err := walkGroup(raw, group)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", resultPath, err)
	}

	set := model.NewInjectionSet()
	set.Values = values
	return set, nil
}

func readRaw(path string) (json.RawMessage, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return json.RawMessage(b), nil
}

// walkGroup descends the nested JSON objects along the group path and
// decodes the leaf as a parameter table.
func walkGroup(raw json.RawMessage, group string) (map[string][]float64, error) {
	cur := raw
	for _, seg := range strings.Split(group, "/") {
		if seg == "" {
			continue
		}
		var node map[string]json.RawMessage
		if err := json.Unmarshal(cur, &node); err != nil {
			return nil, fmt.Errorf("%w: %q", common.ErrorMissingGroup, seg)
		}
		next, ok := node[seg]
		if !ok {
			return nil, fmt.Errorf("%w: %q", common.ErrorMissingGroup, seg)
		}
		cur = next
	}

	var leaf map[string][]float64
	if err := json.Unmarshal(cur, &leaf); err != nil {
		return nil, fmt.Errorf("%w: %q is not a parameter table", common.ErrorMissingGroup, group)
	}
	return leaf, nil
}
