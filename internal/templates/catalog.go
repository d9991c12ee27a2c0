package templates

// Name identifies a template in the catalog.
type Name string

// FileKind identifies one of the five files scaffolded inside an app directory.
type FileKind string

const (
	FileModels      FileKind = "models"
	FileSerializers FileKind = "serializers"
	FileAdmin       FileKind = "admin"
	FileViews       FileKind = "views"
	FileURLs        FileKind = "urls"
)

// FileKinds lists the target files in pipeline order.
var FileKinds = []FileKind{FileModels, FileSerializers, FileAdmin, FileViews, FileURLs}

// Filename returns the on-disk name of the file kind.
func (k FileKind) Filename() string {
	return string(k) + ".py"
}

// Artifact templates, keyed "<artifact>/<part>".
const (
	ModelHead      Name = "model/head"
	ModelBody      Name = "model/body"
	AdminHead      Name = "admin/head"
	AdminBody      Name = "admin/body"
	SerializerHead Name = "serializer/head"
	SerializerBody Name = "serializer/body"
	ViewSetHead    Name = "viewset/head"
	ViewSetBody    Name = "viewset/body"
	URLHead        Name = "url/head"
	URLBody        Name = "url/body"
)

// SetupName returns the catalog name of the import boilerplate for a file kind.
func SetupName(kind FileKind) Name {
	return Name("setup/" + string(kind))
}

// Route table markers. The lines are valid Python, so a freshly appended
// region is importable as is.
const (
	RouteRegionStart = "router = routers.SimpleRouter()"
	RouteRegionEnd   = "urlpatterns = router.urls"
)

var catalog = map[Name]string{
	SetupName(FileModels):      "from django.db import models\n",
	SetupName(FileSerializers): "from rest_framework import serializers\n",
	SetupName(FileAdmin):       "from django.contrib import admin\n",
	SetupName(FileViews):       "from rest_framework import viewsets\n",
	SetupName(FileURLs):        "from rest_framework import routers\n",

	ModelHead: "from django.db import models\n",
	ModelBody: `

class {{.Model}}(models.Model):
{{.Fields}}
    class Meta:
        verbose_name_plural = "{{.Plural}}"
`,

	AdminHead: "from .models import {{.Model}}\n",
	AdminBody: `

@admin.register({{.Model}})
class {{.Model}}Admin(admin.ModelAdmin):
    pass
`,

	SerializerHead: "from .models import {{.Model}}\n",
	SerializerBody: `

class {{.Model}}Serializer(serializers.ModelSerializer):
    class Meta:
        model = {{.Model}}
        fields = ['id'{{range .FieldNames}}, '{{.}}'{{end}}]
`,

	ViewSetHead: "from .models import {{.Model}}\nfrom .serializers import {{.Model}}Serializer\n",
	ViewSetBody: `

class {{.Model}}ViewSet(viewsets.ModelViewSet):
    queryset = {{.Model}}.objects.all()
    serializer_class = {{.Model}}Serializer
`,

	URLHead: "from .views import {{.Model}}ViewSet\n",
	URLBody: "router.register(r'{{.Route}}', {{.Model}}ViewSet)",
}

// Field declaration templates, keyed by lower-case type tag. Each renders one
// class attribute line indented for a model body.
var fieldCatalog = map[string]string{
	"charfield":            "    {{.Name}} = models.CharField(max_length=255, null=True, blank=True)\n",
	"textfield":            "    {{.Name}} = models.TextField(null=True, blank=True)\n",
	"slugfield":            "    {{.Name}} = models.SlugField(max_length=255, unique=True)\n",
	"emailfield":           "    {{.Name}} = models.EmailField(max_length=254, null=True, blank=True)\n",
	"urlfield":             "    {{.Name}} = models.URLField(max_length=200, null=True, blank=True)\n",
	"uuidfield":            "    {{.Name}} = models.UUIDField(null=True, blank=True)\n",
	"integerfield":         "    {{.Name}} = models.IntegerField(null=True, blank=True)\n",
	"bigintegerfield":      "    {{.Name}} = models.BigIntegerField(null=True, blank=True)\n",
	"positiveintegerfield": "    {{.Name}} = models.PositiveIntegerField(null=True, blank=True)\n",
	"floatfield":           "    {{.Name}} = models.FloatField(null=True, blank=True)\n",
	"decimalfield":         "    {{.Name}} = models.DecimalField(max_digits=10, decimal_places=2, null=True, blank=True)\n",
	"booleanfield":         "    {{.Name}} = models.BooleanField(default=False)\n",
	"datefield":            "    {{.Name}} = models.DateField(null=True, blank=True)\n",
	"datetimefield":        "    {{.Name}} = models.DateTimeField(null=True, blank=True)\n",
	"timefield":            "    {{.Name}} = models.TimeField(null=True, blank=True)\n",
	"durationfield":        "    {{.Name}} = models.DurationField(null=True, blank=True)\n",
	"jsonfield":            "    {{.Name}} = models.JSONField(default=dict, blank=True)\n",
	"filefield":            "    {{.Name}} = models.FileField(upload_to='{{.Name}}/', null=True, blank=True)\n",
	"imagefield":           "    {{.Name}} = models.ImageField(upload_to='{{.Name}}/', null=True, blank=True)\n",
	"foreignkey":           "    {{.Name}} = models.ForeignKey('{{.Target}}', on_delete=models.CASCADE, null=True, blank=True)\n",
	"onetoonefield":        "    {{.Name}} = models.OneToOneField('{{.Target}}', on_delete=models.CASCADE, null=True, blank=True)\n",
	"manytomanyfield":      "    {{.Name}} = models.ManyToManyField('{{.Target}}', blank=True)\n",
}

// relationalFields are the field types that reference another model.
var relationalFields = map[string]bool{
	"foreignkey":      true,
	"onetoonefield":   true,
	"manytomanyfield": true,
}

// IsRelational reports whether a built-in field type references another model.
func IsRelational(typeTag string) bool {
	return relationalFields[typeTag]
}

// FieldTemplates returns a copy of the built-in field templates.
func FieldTemplates() map[string]string {
	out := make(map[string]string, len(fieldCatalog))
	for k, v := range fieldCatalog {
		out[k] = v
	}
	return out
}

// ArtifactData is the data rendered into artifact templates.
type ArtifactData struct {
	Model      string   // class name, e.g. "Article"
	Fields     string   // rendered field declarations, one per line
	FieldNames []string // field identifiers in input order
	Plural     string   // display plural, e.g. "Articles"
	Route      string   // route prefix, e.g. "articles"
}

// FieldData is the data rendered into field templates.
type FieldData struct {
	Name   string // attribute name
	Target string // related model for relational fields
}
