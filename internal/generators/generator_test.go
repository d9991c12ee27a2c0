package generators_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/drscaffold/internal/errors"
	"go.eggybyte.com/drscaffold/internal/fields"
	"go.eggybyte.com/drscaffold/internal/generators"
	"go.eggybyte.com/drscaffold/internal/projectfs"
	"go.eggybyte.com/drscaffold/internal/testingx"
)

func newGenerator(t *testing.T, app *testingx.App, model string, raw ...string) *generators.Generator {
	t.Helper()
	gen, err := generators.NewGenerator(generators.ResourceSpec{
		AppName:   app.Name,
		ModelName: model,
		Fields:    raw,
	}, generators.WithMainDir(app.MainDir))
	require.NoError(t, err)
	return gen
}

func TestNewGenerator_Validation(t *testing.T) {
	tests := []struct {
		name string
		spec generators.ResourceSpec
		code errors.Code
	}{
		{"missing app", generators.ResourceSpec{ModelName: "Article"}, errors.CodeInvalidArgument},
		{"missing model", generators.ResourceSpec{AppName: "blog"}, errors.CodeInvalidArgument},
		{"bad model name", generators.ResourceSpec{AppName: "blog", ModelName: "My Article"}, errors.CodeInvalidArgument},
		{"empty field token", generators.ResourceSpec{AppName: "blog", ModelName: "Article", Fields: []string{""}}, errors.CodeInvalidArgument},
		{"malformed field", generators.ResourceSpec{AppName: "blog", ModelName: "Article", Fields: []string{"title"}}, errors.CodeInvalidArgument},
		{"unknown type", generators.ResourceSpec{AppName: "blog", ModelName: "Article", Fields: []string{"title:nosuchfield"}}, errors.CodeUnknownFieldType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := generators.NewGenerator(tt.spec, generators.WithMainDir(t.TempDir()))
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.CodeOf(err))
		})
	}
}

func TestNewGenerator_Defaults(t *testing.T) {
	gen, err := generators.NewGenerator(generators.ResourceSpec{AppName: "blog", ModelName: "Category"})
	require.NoError(t, err)

	assert.Equal(t, generators.DefaultMainDir, gen.MainDir())
	assert.Equal(t, "blog", gen.AppName())
	assert.Equal(t, "Category", gen.ModelName())
	assert.Equal(t, "Categories", gen.PluralName())
	assert.Equal(t, "categories", gen.RoutePrefix())
	assert.Empty(t, gen.Fields())
}

func TestGenerator_Parts(t *testing.T) {
	app := testingx.NewEmptyMainDir(t, "blog")
	gen := newGenerator(t, app, "Article", "title:charfield", "author:foreignkey")

	fieldsString, err := gen.FieldsString()
	require.NoError(t, err)
	assert.Equal(t,
		"    title = models.CharField(max_length=255, null=True, blank=True)\n"+
			"    author = models.ForeignKey('Author', on_delete=models.CASCADE, null=True, blank=True)\n",
		fieldsString)

	model, err := gen.ModelString()
	require.NoError(t, err)
	assert.Contains(t, model, "class Article(models.Model):\n")
	assert.Contains(t, model, `verbose_name_plural = "Articles"`)

	head, body, err := gen.SerializerParts()
	require.NoError(t, err)
	assert.Equal(t, "from .models import Article\n", head)
	assert.Contains(t, body, "class ArticleSerializer(serializers.ModelSerializer):")
	assert.Contains(t, body, "fields = ['id', 'title', 'author']")

	head, body, err = gen.AdminParts()
	require.NoError(t, err)
	assert.Equal(t, "from .models import Article\n", head)
	assert.Contains(t, body, "@admin.register(Article)\nclass ArticleAdmin(admin.ModelAdmin):")

	head, body, err = gen.ViewSetParts()
	require.NoError(t, err)
	assert.Contains(t, head, "from .models import Article\n")
	assert.Contains(t, head, "from .serializers import ArticleSerializer\n")
	assert.Contains(t, body, "class ArticleViewSet(viewsets.ModelViewSet):")
	assert.Contains(t, body, "queryset = Article.objects.all()")
	assert.Contains(t, body, "serializer_class = ArticleSerializer")

	head, body, err = gen.URLParts()
	require.NoError(t, err)
	assert.Equal(t, "from .views import ArticleViewSet\n", head)
	assert.Equal(t, "router.register(r'articles', ArticleViewSet)", body)
}

func TestGenerator_GetFieldsString(t *testing.T) {
	app := testingx.NewEmptyMainDir(t, "blog")
	gen := newGenerator(t, app, "Article")

	out, err := gen.GetFieldsString([]string{"done:booleanfield"})
	require.NoError(t, err)
	assert.Equal(t, "    done = models.BooleanField(default=False)\n", out)

	_, err = gen.GetFieldsString([]string{"done:nope"})
	var unknown *fields.UnknownFieldTypeError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "nope", unknown.Type)
}

func TestGenerator_WithFieldTypes(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewApp(t, "shop")
	gen, err := generators.NewGenerator(generators.ResourceSpec{
		AppName:   "shop",
		ModelName: "Customer",
		Fields:    []string{"phone:phonefield"},
	},
		generators.WithMainDir(app.MainDir),
		generators.WithFieldTypes(map[string]string{
			"phonefield": "    {{.Name}} = models.CharField(max_length=20)",
		}),
	)
	require.NoError(t, err)
	require.NoError(t, gen.Run())

	assert.Contains(t, app.Read(t, "models.py"), "    phone = models.CharField(max_length=20)\n")
}

func TestGenerator_AppDir(t *testing.T) {
	app := testingx.NewEmptyMainDir(t, "blog")
	gen := newGenerator(t, app, "Article")
	assert.Equal(t, app.Dir(), gen.AppDir())
}

func TestNewGenerator_FieldRenderFailureWritesNothing(t *testing.T) {
	tests := []struct {
		name     string
		template string
		fields   []string
	}{
		{
			name:     "missing data key",
			template: "    {{.Name}} = models.CharField(max_length={{.Length}})",
			fields:   []string{"phone:phonefield"},
		},
		{
			name:     "fails only for some names",
			template: "    {{.Name}} = models.CharField(max_length=20){{if eq .Name \"fax\"}}{{.Length}}{{end}}",
			fields:   []string{"phone:phonefield", "fax:phonefield"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := testingx.NewEmptyMainDir(t, "crm")

			_, err := generators.NewGenerator(generators.ResourceSpec{
				AppName:   "crm",
				ModelName: "Contact",
				Fields:    tt.fields,
			},
				generators.WithMainDir(app.MainDir),
				generators.WithFieldTypes(map[string]string{"phonefield": tt.template}),
			)
			require.Error(t, err)
			assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))
			assert.Contains(t, err.Error(), "Length")

			_, statErr := os.Stat(app.Dir())
			assert.True(t, os.IsNotExist(statErr))
		})
	}
}

func TestGenerator_RoutesWithoutURLs(t *testing.T) {
	app := testingx.NewEmptyMainDir(t, "blog")
	gen := newGenerator(t, app, "Article")

	_, err := gen.Routes()
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

// recordingPatcher records the result of each chunk replacement.
type recordingPatcher struct {
	*projectfs.ProjectFS
	chunks []projectfs.PatchResult
}

func (p *recordingPatcher) ReplaceFileChunk(path string, region projectfs.Region, content string) (projectfs.PatchResult, error) {
	result, err := p.ProjectFS.ReplaceFileChunk(path, region, content)
	p.chunks = append(p.chunks, result)
	return result, err
}

func TestGenerator_WithPatcher(t *testing.T) {
	testingx.CaptureUI(t)
	app := testingx.NewApp(t, "blog")
	rec := &recordingPatcher{ProjectFS: projectfs.NewProjectFS(app.MainDir)}

	for _, model := range []string{"Article", "Author"} {
		gen, err := generators.NewGenerator(
			generators.ResourceSpec{AppName: "blog", ModelName: model},
			generators.WithMainDir(app.MainDir),
			generators.WithPatcher(rec),
		)
		require.NoError(t, err)
		require.NoError(t, gen.Run())
	}

	assert.Equal(t, []projectfs.PatchResult{projectfs.Appended, projectfs.Replaced}, rec.chunks)
	assert.True(t, strings.HasSuffix(app.Read(t, "urls.py"),
		"router.register(r'articles', ArticleViewSet)\n"+
			"router.register(r'authors', AuthorViewSet)\n"+
			"urlpatterns = router.urls\n"))
}
