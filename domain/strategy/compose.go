// Package strategy turns classification labels into the scripted response plan.
package strategy

import (
	"errors"
	"fmt"
	"strings"

	"github.com/neha01mittal/datadriven-firesafety/assets"
	"github.com/neha01mittal/datadriven-firesafety/domain/classify"
)

const (
	// Header is the first line of every plan.
	Header = "Optimising fire fighting strategy based on: "

	// Placeholder is shown in place of the plan until the reveal starts.
	Placeholder = "Optimising fire fighting strategy based on:"

	movementHeader = "Sending suggested movement to firefighters:"

	// PlanSize is the number of labels the plan is built from.
	PlanSize = 3
)

// ErrInsufficientLabels is matched by every InsufficientLabelsError.
var ErrInsufficientLabels = errors.New("insufficient labels")

// InsufficientLabelsError reports a label sequence shorter than PlanSize.
type InsufficientLabelsError struct {
	Got int
}

func (e *InsufficientLabelsError) Error() string {
	return fmt.Sprintf("need at least %d labels to build a strategy, got %d", PlanSize, e.Got)
}

func (e *InsufficientLabelsError) Is(target error) bool { return target == ErrInsufficientLabels }

// Compose lists the first three labels as a numbered plan followed by the
// fixed movement directives. It is pure.
func Compose(labels classify.Labels) (string, error) {
	if len(labels) < PlanSize {
		return "", &InsufficientLabelsError{Got: len(labels)}
	}
	var b strings.Builder
	b.WriteString(Header)
	b.WriteString("\n")
	for i := 0; i < PlanSize; i++ {
		fmt.Fprintf(&b, "\n(%d) %s", i+1, labels[i])
	}
	b.WriteString("\n\n")
	b.WriteString(movementHeader)
	b.WriteString("\n")
	for _, d := range assets.Directives() {
		b.WriteString("\n")
		b.WriteString(d)
	}
	return b.String(), nil
}
