package article

import (
	"bytes"
	"context"
	"net/http"
	"testing"

	"github.com/articledesk/articles-cli/internal/cli"
	"github.com/articledesk/articles-cli/internal/cli/user"
	"github.com/articledesk/articles-cli/internal/cloud/strapi"
	"github.com/articledesk/articles-cli/internal/notify"
	"github.com/articledesk/articles-cli/internal/terminal"
	"github.com/articledesk/articles-cli/internal/utils/test/assert"
	"github.com/articledesk/articles-cli/internal/utils/test/mock"
	"github.com/articledesk/articles-cli/internal/utils/test/strapitest"
)

type testSetup struct {
	server  *strapitest.Server
	profile *user.Profile
}

func setup(t *testing.T) testSetup {
	t.Helper()

	server := strapitest.NewServer(t)
	alice := server.SeedUser("alice", "alice@example.com", "password")

	return testSetup{
		server:  server,
		profile: mock.NewProfileWithToken(t, server.URL(), server.IssueToken(alice.ID)),
	}
}

func (ts testSetup) clients(ui terminal.UI) cli.Clients {
	return cli.Clients{
		Strapi:   strapi.NewClient(ts.server.URL()),
		Notifier: cli.NewUINotifier(ui),
	}
}

func TestArticleList(t *testing.T) {
	t.Run("should require a session", func(t *testing.T) {
		_, ui := mock.NewUI()

		cmd := &CommandList{}
		err := cmd.Handler(context.Background(), mock.NewProfile(t), ui, cli.Clients{})
		assert.Equal(t, cli.ErrNotLoggedIn, err)
	})

	t.Run("should list the articles in server order", func(t *testing.T) {
		ts := setup(t)
		ts.server.SeedArticle("First", "one")
		ts.server.SeedArticle("Second", "two")

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		assert.Contains(t, out.String(), "01:23:45 UTC INFO  Found 2 article(s)\n")
		assert.Contains(t, out.String(), "  1   First   one")
		assert.Contains(t, out.String(), "  2   Second  two")
	})

	t.Run("should notify a failure to load the articles", func(t *testing.T) {
		ts := setup(t)
		ts.server.FailNext(http.MethodGet, "/articles", http.StatusForbidden, "Forbidden")

		out, ui := mock.NewUI()

		cmd := &CommandList{}
		err := cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui))
		assert.True(t, notify.IsReported(err), "expected the error to be reported")

		assert.Equal(t, "01:23:45 UTC ERROR Loading articles failed: Forbidden\n", out.String())
	})
}

func TestArticleCreate(t *testing.T) {
	t.Run("should create the article", func(t *testing.T) {
		ts := setup(t)
		out, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{contentInputs{Title: "Hello", Description: "World"}}}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		articles := ts.server.Articles()
		assert.Equal(t, 1, len(articles))
		assert.Equal(t, "Hello", articles[0].Attributes.Title)
		assert.Equal(t, "World", articles[0].Attributes.Description)

		assert.Equal(t, `01:23:45 UTC INFO  Article created
01:23:45 UTC DEBUG Article ID: 1
`, out.String())
	})

	t.Run("should notify a rejected article", func(t *testing.T) {
		ts := setup(t)
		ts.server.FailNext(http.MethodPost, "/articles", http.StatusBadRequest, "title must be defined.")

		out, ui := mock.NewUI()

		cmd := &CommandCreate{createInputs{contentInputs{Title: "Hello"}}}
		err := cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui))
		assert.True(t, notify.IsReported(err), "expected the error to be reported")

		assert.Equal(t, 0, len(ts.server.Articles()))
		assert.Equal(t, "01:23:45 UTC ERROR Article creation failed: title must be defined.\n", out.String())
	})
}

func TestArticleUpdate(t *testing.T) {
	t.Run("should update the article with the provided values", func(t *testing.T) {
		ts := setup(t)
		article := ts.server.SeedArticle("Hello", "World")

		out, ui := mock.NewUI()

		cmd := &CommandUpdate{idInputs{article.ID}, contentInputs{"Hello again", "Everyone"}}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		updated := ts.server.Articles()[0]
		assert.Equal(t, "Hello again", updated.Attributes.Title)
		assert.Equal(t, "Everyone", updated.Attributes.Description)

		assert.Equal(t, "01:23:45 UTC INFO  Article updated\n", out.String())
	})

	t.Run("should prompt for missing values with the current ones", func(t *testing.T) {
		ts := setup(t)
		article := ts.server.SeedArticle("Hello", "World")

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			console.ExpectString("Title")
			console.SendLine("")
			console.ExpectString("Description")
			console.SendLine("Everyone")
			console.ExpectEOF()
		}()

		cmd := &CommandUpdate{id: idInputs{article.ID}}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		console.Tty().Close()
		<-doneCh

		updated := ts.server.Articles()[0]
		assert.Equal(t, "Hello", updated.Attributes.Title)
		assert.Equal(t, "Everyone", updated.Attributes.Description)
	})

	t.Run("should notify a failure for an unknown article", func(t *testing.T) {
		ts := setup(t)
		out, ui := mock.NewUI()

		cmd := &CommandUpdate{idInputs{42}, contentInputs{"Hello", "World"}}
		err := cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui))
		assert.True(t, notify.IsReported(err), "expected the error to be reported")

		assert.Equal(t, `01:23:45 UTC WARN  Article 42 was not found in your articles
01:23:45 UTC ERROR Article update failed: Not Found
`, out.String())
	})
}

func TestArticleDelete(t *testing.T) {
	t.Run("should delete the article once confirmed", func(t *testing.T) {
		ts := setup(t)
		article := ts.server.SeedArticle("Hello", "World")

		out := new(bytes.Buffer)
		ui := mock.NewUIWithOptions(mock.UIOptions{AutoConfirm: true}, out)

		cmd := &CommandDelete{idInputs{article.ID}}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		assert.Equal(t, 0, len(ts.server.Articles()))
		assert.Equal(t, "01:23:45 UTC INFO  Article deleted\n", out.String())
	})

	t.Run("should do nothing if the user does not want to proceed", func(t *testing.T) {
		ts := setup(t)
		article := ts.server.SeedArticle("Hello", "World")

		_, console, _, ui, consoleErr := mock.NewVT10XConsole()
		assert.Nil(t, consoleErr)
		defer console.Close()

		doneCh := make(chan (struct{}))
		go func() {
			defer close(doneCh)
			console.ExpectString("Are you sure you want to delete article 1?")
			console.SendLine("n")
			console.ExpectEOF()
		}()

		cmd := &CommandDelete{idInputs{article.ID}}
		assert.Nil(t, cmd.Handler(context.Background(), ts.profile, ui, ts.clients(ui)))

		console.Tty().Close()
		<-doneCh

		assert.Equal(t, 1, len(ts.server.Articles()))
		assert.Equal(t, 0, len(ts.server.Requests()))
	})
}
