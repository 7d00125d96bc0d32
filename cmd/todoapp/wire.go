package main

import (
	"log/slog"
	nethttp "net/http"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/graphql"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/clients/identity"
	adapthttp "github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/appsync-todo-client/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/appsync-todo-client/internal/app"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/config"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/health"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/httpclient"
	"github.com/jsamuelsen11/appsync-todo-client/internal/platform/telemetry"
	"github.com/jsamuelsen11/appsync-todo-client/internal/ports"
)

// Named services; both outbound clients share the *httpclient.Client type.
const (
	graphqlHTTPClient  = "httpclient.graphql"
	identityHTTPClient = "httpclient.identity"
)

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	do.ProvideNamed(injector, graphqlHTTPClient, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.GraphQL.Client, "graphql-api", metrics, logger), nil
	})

	do.ProvideNamed(injector, identityHTTPClient, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Identity.Client, "identity-provider", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*graphql.RealtimeTransport, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return graphql.NewRealtimeTransport(&cfg.GraphQL, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*graphql.Client, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, graphqlHTTPClient)
		realtime := do.MustInvoke[*graphql.RealtimeTransport](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		transport := graphql.Chain(graphql.AuthLink(graphql.APIKeyAuth(cfg.GraphQL.APIKey)))(graphql.Split(
			graphql.NewHTTPTransport(client, cfg.GraphQL.Endpoint, logger),
			realtime,
		))
		return graphql.NewClient(transport, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TodoClient, error) {
		client := do.MustInvoke[*graphql.Client](i)
		return acl.NewTodoClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*identity.SessionStore, error) {
		return identity.NewSessionStore(cfg.Identity.SessionFile)
	})

	do.Provide(injector, func(i do.Injector) (ports.IdentityClient, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, identityHTTPClient)
		store := do.MustInvoke[*identity.SessionStore](i)
		return identity.New(&cfg.Identity, client.StandardClient(), store, logger)
	})

	do.Provide(injector, func(i do.Injector) (ports.Actions, error) {
		todos := do.MustInvoke[ports.TodoClient](i)
		idp := do.MustInvoke[ports.IdentityClient](i)
		notifier := do.MustInvoke[ports.Notifier](i)
		return app.NewActionService(todos, idp, notifier, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvokeNamed[*httpclient.Client](i, graphqlHTTPClient))
		registry.Register(do.MustInvokeNamed[*httpclient.Client](i, identityHTTPClient))
		registry.Register(do.MustInvoke[*graphql.RealtimeTransport](i))
		return registry, nil
	})

	do.Provide(injector, func(_ do.Injector) (*signInWaiter, error) {
		return newSignInWaiter(), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		addr, path, err := adapthttp.CallbackTarget(cfg.Identity.RedirectSignIn)
		if err != nil {
			return nil, err
		}

		actions := do.MustInvoke[ports.Actions](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		waiter := do.MustInvoke[*signInWaiter](i)

		var handler nethttp.Handler = adapthttp.NewRouter(path,
			handlers.NewCallbackHandler(actions, waiter.done),
			handlers.NewHealthHandler(registry),
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.Tracing(),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Callback.WriteTimeout),
		)
		return adapthttp.NewServer(addr, cfg.Callback, handler, logger), nil
	})
}
