package lint

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/drscaffold/internal/generators"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/testingx"
)

func scaffold(t *testing.T, app *testingx.App, model string, opts ...generators.Option) {
	t.Helper()
	opts = append([]generators.Option{generators.WithMainDir(app.MainDir)}, opts...)
	gen, err := generators.NewGenerator(generators.ResourceSpec{AppName: app.Name, ModelName: model}, opts...)
	require.NoError(t, err)
	require.NoError(t, gen.Run())
}

func rules(results *LintResults) []string {
	out := make([]string, 0, len(results.Results))
	for _, r := range results.Results {
		out = append(out, r.Level+":"+r.Rule)
	}
	return out
}

func TestCheck_Clean(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewEmptyMainDir(t, "blog")
	scaffold(t, app, "Article")
	scaffold(t, app, "Author")

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Empty(t, results.Results)
	assert.Zero(t, results.ErrorCount)
}

func TestCheck_MissingApp(t *testing.T) {
	app := testingx.NewEmptyMainDir(t, "blog")

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{"error:app-structure"}, rules(results))
	assert.Equal(t, 1, results.ErrorCount)
}

func TestCheck_MissingFile(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewEmptyMainDir(t, "blog")
	scaffold(t, app, "Article")
	require.NoError(t, os.Remove(app.Path("admin.py")))
	require.NoError(t, os.Mkdir(app.Path("migrations"), 0755))

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{"error:app-structure"}, rules(results))
	assert.Contains(t, results.Results[0].Message, "admin.py")
}

func TestCheck_EmptyApp(t *testing.T) {
	app := testingx.NewApp(t, "blog")

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"warning:setup-imports",
		"warning:setup-imports",
		"warning:setup-imports",
		"warning:setup-imports",
		"warning:setup-imports",
		"info:route-region",
	}, rules(results))
	assert.Equal(t, 5, results.WarningCount)
	assert.Equal(t, 1, results.InfoCount)
}

func TestCheck_Findings(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewEmptyMainDir(t, "blog")
	scaffold(t, app, "Article", generators.WithSkipAdmin(true))

	app.Write(t, "urls.py", ""+
		"from rest_framework import routers\n"+
		"from .views import ArticleViewSet\n"+
		"\n"+
		"router = routers.SimpleRouter()\n"+
		"router.register(r'articles', ArticleViewSet)\n"+
		"router.register(r'tags', TagViewSet)\n"+
		"urlpatterns = router.urls\n")

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"error:route-imports",
		"warning:route-viewsets",
		"info:admin-registration",
	}, rules(results))
	assert.Contains(t, results.Results[0].Message, "TagViewSet")
	assert.Contains(t, results.Results[2].Message, "Article")
}

func TestCheck_BrokenRegion(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewEmptyMainDir(t, "blog")
	scaffold(t, app, "Article")

	app.Write(t, "urls.py", ""+
		"from rest_framework import routers\n"+
		"urlpatterns = router.urls\n"+
		"router = routers.SimpleRouter()\n")

	results, err := NewLinter().Check(projectfs.NewProjectFS(app.MainDir), "blog")
	require.NoError(t, err)
	assert.Equal(t, []string{"error:route-region"}, rules(results))
}
