package testutils

import (
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"

	"github.com/sergeii/netmon/cmd/netmon/application"
	"github.com/sergeii/netmon/cmd/netmon/components/api"
	"github.com/sergeii/netmon/internal/core/repositories"
	"github.com/sergeii/netmon/tests/testapp"
)

type TestServerRepositories struct {
	Statuses repositories.StatusRepository
	History  repositories.HistoryRepository
}

func PrepareTestServer(tb fxtest.TB, extra ...fx.Option) (*httptest.Server, func()) {
	gin.SetMode(gin.ReleaseMode) // prevent gin from overwriting middlewares

	var router *gin.Engine
	fxopts := []fx.Option{
		fx.Provide(testapp.NoLogging),
		fx.Provide(testapp.ProvideSettings),
		fx.Provide(testapp.ProvidePersistence),
		application.Module,
		api.Module,
		fx.NopLogger,
		fx.Populate(&router),
	}
	fxopts = append(fxopts, extra...)

	app := fxtest.New(tb, fxopts...)
	app.RequireStart()

	ts := httptest.NewServer(router)

	return ts, func() {
		defer app.RequireStop() // nolint: errcheck
		defer ts.Close()
	}
}

func PrepareTestServerWithRepos(
	tb fxtest.TB,
	extra ...fx.Option,
) (*httptest.Server, TestServerRepositories, func()) {
	var repos TestServerRepositories
	extra = append(
		extra,
		fx.Populate(&repos.Statuses, &repos.History),
	)
	ts, cleanup := PrepareTestServer(tb, extra...)
	return ts, repos, cleanup
}
