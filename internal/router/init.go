package router

import (
	"github.com/sali72/expense-tracker/internal/application"
	"github.com/sali72/expense-tracker/internal/container"
	pginfra "github.com/sali72/expense-tracker/internal/infrastructure/postgres"
	handlers "github.com/sali72/expense-tracker/internal/interface/http"
	"github.com/sali72/expense-tracker/internal/router/modules"
)

func buildUserModule() *modules.UserModule {
	repo := pginfra.NewUserRepository(container.GetDB())
	svc := application.NewUserService(repo, container.GetLogger())
	return modules.NewUserModule(handlers.NewUserHandler(svc, container.GetLogger()))
}

func buildExpenseModule() *modules.ExpenseModule {
	repo := pginfra.NewExpenseRepository(container.GetDB())
	svc := application.NewExpenseService(repo, container.GetLogger())
	return modules.NewExpenseModule(handlers.NewExpenseHandler(svc, container.GetLogger()))
}

func buildAuthModule() *modules.AuthModule {
	users := pginfra.NewUserRepository(container.GetDB())
	svc := application.NewAuthService(users, container.GetJWT(), container.GetLogger())
	return modules.NewAuthModule(handlers.NewAuthHandler(svc, container.GetLogger()))
}

// InitModules wires all feature modules from the container singletons and
// registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	r.Add(buildUserModule())
	r.Add(buildExpenseModule())
	r.Add(buildAuthModule())
	if cfg := container.GetConfig(); cfg != nil && cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
