package greina_test

import (
	"testing"

	greina "github.com/0xalexb/greina"
	"github.com/0xalexb/greina/expand"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

func TestNewModule_SuppliesDocument(t *testing.T) {
	t.Parallel()

	src := greina.Literal("app.yaml", "app:\n  name: ${NAME}\n")

	var doc *greina.Document

	app := fxtest.New(t,
		greina.NewModule("app",
			src,
			greina.WithEnvironment(expand.Map{"NAME": "svc"}),
			greina.WithRequired("app.name"),
		),
		fx.Invoke(fx.Annotate(
			func(d *greina.Document) {
				doc = d
			},
			fx.ParamTags(`name:"app"`),
		)),
	)

	app.RequireStart()

	require.NotNil(t, doc)
	assert.Equal(t, greina.StateComplete, doc.State)
	assert.Empty(t, doc.Diagnostics)

	name, ok := doc.Root.Lookup("app", "name")
	require.True(t, ok)
	assert.Equal(t, "svc", name.Text())

	app.RequireStop()
}

func TestNewModule_FailOnError(t *testing.T) {
	t.Parallel()

	src := greina.Literal("app.yaml", "app:\n  name: svc\n")

	app := fx.New(
		greina.NewModule("app", src,
			greina.WithRequired("app.version"),
			greina.WithFailOnError(),
		),
		fx.Invoke(fx.Annotate(
			func(_ *greina.Document) {},
			fx.ParamTags(`name:"app"`),
		)),
		fx.NopLogger,
	)

	err := app.Err()

	require.Error(t, err)
	require.ErrorIs(t, err, greina.ErrInvalidDocument)
}

func TestNewModule_ErrorsWithoutFailOnError(t *testing.T) {
	t.Parallel()

	src := greina.Literal("app.yaml", "app:\n  name: svc\n")

	var doc *greina.Document

	app := fxtest.New(t,
		greina.NewModule("app", src, greina.WithRequired("app.version")),
		fx.Invoke(fx.Annotate(
			func(d *greina.Document) {
				doc = d
			},
			fx.ParamTags(`name:"app"`),
		)),
	)

	app.RequireStart()

	require.NotNil(t, doc)
	assert.True(t, doc.HasErrors(), "document should carry the diagnostics for the consumer's policy")

	app.RequireStop()
}

func TestNewModule_EmptyName(t *testing.T) {
	t.Parallel()

	app := fx.New(
		greina.NewModule("", greina.Literal("x", "")),
		fx.NopLogger,
	)

	err := app.Err()

	require.Error(t, err)
	require.ErrorIs(t, err, greina.ErrEmptyName)
}

func TestNewModule_TwoDocuments(t *testing.T) {
	t.Parallel()

	var appDoc, dbDoc *greina.Document

	app := fxtest.New(t,
		greina.NewModule("app", greina.Literal("app.yaml", "name: svc\n")),
		greina.NewModule("db", greina.Literal("db.yaml", "host: localhost\n")),
		fx.Invoke(fx.Annotate(
			func(a, d *greina.Document) {
				appDoc = a
				dbDoc = d
			},
			fx.ParamTags(`name:"app"`, `name:"db"`),
		)),
	)

	app.RequireStart()

	require.NotNil(t, appDoc)
	require.NotNil(t, dbDoc)
	assert.Equal(t, "app.yaml", appDoc.Source)
	assert.Equal(t, "db.yaml", dbDoc.Source)

	app.RequireStop()
}
