package sync

import (
	"errors"
	"fmt"

	"github.com/manifoldco/promptui"
)

// InteractivePrompter asks the user, via promptui, which side wins a
// conflict the mtime heuristic could not resolve.
type InteractivePrompter struct{}

var _ Prompter = InteractivePrompter{}

func (InteractivePrompter) Ask(leftPath, rightPath string) (Decision, error) {
	prompt := promptui.Select{
		Label: fmt.Sprintf("%s and %s differ, which wins?", leftPath, rightPath),
		Items: []string{"Yes (left wins)", "No (right wins)", "Yes to all", "No to all", "Cancel"},
	}
	idx, _, err := prompt.Run()
	if err != nil {
		if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
			return DecisionNone, nil
		}
		return DecisionNone, err
	}
	switch idx {
	case 0:
		return DecisionYes, nil
	case 1:
		return DecisionNo, nil
	case 2:
		return DecisionYesToAll, nil
	case 3:
		return DecisionNoToAll, nil
	default:
		return DecisionCancel, nil
	}
}
