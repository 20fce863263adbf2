package terminal

import (
	"fmt"

	"github.com/fatih/color"
)

const (
	logFieldDescription = "description"
)

var (
	noticeFields = []string{logFieldTitle, logFieldDescription}
)

type notice struct {
	title       string
	description string
}

func (n notice) Message() (string, error) {
	title := color.New(color.Bold).SprintFunc()(n.title)
	if n.description == "" {
		return title, nil
	}
	return fmt.Sprintf("%s: %s", title, n.description), nil
}

func (n notice) Payload() ([]string, map[string]interface{}, error) {
	return noticeFields, map[string]interface{}{
		logFieldTitle:       n.title,
		logFieldDescription: n.description,
	}, nil
}
