package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.eggybyte.com/drscaffold/internal/errors"
)

func TestValidateAllTemplates(t *testing.T) {
	require.NoError(t, NewLoader().ValidateAllTemplates())

	for name, content := range FieldTemplates() {
		assert.NoError(t, Validate(name, content), name)
	}
}

func TestEverySetupIsCatalogued(t *testing.T) {
	loader := NewLoader()
	for _, kind := range FileKinds {
		content, err := loader.LoadTemplate(SetupName(kind))
		require.NoError(t, err, kind)
		assert.Contains(t, content, "import")
		assert.Equal(t, string(kind)+".py", kind.Filename())
	}
}

func TestLoadTemplateNotFound(t *testing.T) {
	_, err := NewLoader().LoadTemplate("nope/body")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeNotFound))
}

func TestRenderArtifacts(t *testing.T) {
	loader := NewLoader()
	data := ArtifactData{
		Model:      "Article",
		Fields:     "    title = models.CharField(max_length=255, null=True, blank=True)\n",
		FieldNames: []string{"title", "body"},
		Plural:     "Articles",
		Route:      "articles",
	}

	tests := []struct {
		name Name
		want []string
	}{
		{ModelBody, []string{"class Article(models.Model):", "    title = models.CharField", `verbose_name_plural = "Articles"`}},
		{AdminHead, []string{"from .models import Article\n"}},
		{AdminBody, []string{"@admin.register(Article)", "class ArticleAdmin(admin.ModelAdmin):"}},
		{SerializerBody, []string{"class ArticleSerializer(serializers.ModelSerializer):", "model = Article", "fields = ['id', 'title', 'body']"}},
		{ViewSetHead, []string{"from .serializers import ArticleSerializer\n"}},
		{ViewSetBody, []string{"class ArticleViewSet(viewsets.ModelViewSet):", "queryset = Article.objects.all()", "serializer_class = ArticleSerializer"}},
		{URLHead, []string{"from .views import ArticleViewSet\n"}},
		{URLBody, []string{"router.register(r'articles', ArticleViewSet)"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.name), func(t *testing.T) {
			out, err := loader.LoadAndRender(tt.name, data)
			require.NoError(t, err)
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
		})
	}
}

func TestRenderFuncMap(t *testing.T) {
	out, err := Render("t", "{{ .Model | ToLower | Pluralize }}", ArtifactData{Model: "Category"})
	require.NoError(t, err)
	assert.Equal(t, "categories", out)
}

func TestRenderErrors(t *testing.T) {
	_, err := Render("broken", "{{ .Name ", FieldData{})
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidArgument))

	_, err = Render("missing", "{{ .Nope }}", FieldData{Name: "x"})
	require.Error(t, err)
}

func TestRelationalFields(t *testing.T) {
	for _, tag := range []string{"foreignkey", "onetoonefield", "manytomanyfield"} {
		assert.True(t, IsRelational(tag), tag)
		assert.Contains(t, FieldTemplates()[tag], "{{.Target}}")
	}
	assert.False(t, IsRelational("charfield"))
}
