// articles-cli is a command-line client for managing articles on a Strapi CMS.
package main

import (
	"github.com/articledesk/articles-cli/cmd"
)

func main() {
	cmd.Run()
}
