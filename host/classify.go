package host

import (
	"strings"

	"github.com/manifoldhq/manifold/errors"
)

// HeuristicClassifier is the default Classifier: it categorizes a failure by
// matching its message against known patterns. Deployments with richer
// engine-specific error types should supply their own Classifier at Register
// time; this one exists so a bare host still produces a useful taxonomy.
type HeuristicClassifier struct{}

// Classify maps the failure message onto the Kind taxonomy
func (HeuristicClassifier) Classify(failure error) (Kind, error) {
	if failure == nil {
		return KindUnknown, errors.New("cannot classify nil failure")
	}

	msg := strings.ToLower(failure.Error())

	switch {
	case strings.Contains(msg, "deadline exceeded") || strings.Contains(msg, "timed out") || strings.Contains(msg, "timeout"):
		return KindTimeout, nil

	case strings.Contains(msg, "network") || strings.Contains(msg, "connection") || strings.Contains(msg, "broker"):
		return KindNetwork, nil

	case strings.Contains(msg, "serialization") || strings.Contains(msg, "deserialization") ||
		strings.Contains(msg, "arithmetic") || strings.Contains(msg, "invalid") ||
		strings.Contains(msg, "schema"):
		return KindUser, nil

	case strings.Contains(msg, "state store") || strings.Contains(msg, "rebalance") ||
		strings.Contains(msg, "out of memory") || strings.Contains(msg, "internal"):
		return KindSystem, nil

	default:
		return KindUnknown, nil
	}
}
