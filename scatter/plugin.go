package scatter

import (
	"context"
	"reflect"
	"sync"

	"github.com/btccom/scattersigner/session"
	"github.com/pkg/errors"
)

// ID is the plugin's identifier, also used as its
// translation namespace.
const ID = "scatter"

// DefaultMetadata describes the plugin to users
var DefaultMetadata = session.WalletPluginMetadata{
	Name:     "Scatter",
	Logo:     logo,
	Homepage: "https://github.com/GetScatter",
	Download: "https://github.com/GetScatter/ScatterDesktop/releases",
}

// Option configures a Plugin
type Option func(*Plugin)

// WithEnvironment overrides the detected environment
func WithEnvironment(env Environment) Option {
	return func(p *Plugin) {
		p.env = env
	}
}

// WithBackend registers the backend factory for env
func WithBackend(env Environment, factory BackendFactory) Option {
	return func(p *Plugin) {
		p.factories[env] = factory
	}
}

// WithMetadata replaces DefaultMetadata
func WithMetadata(metadata session.WalletPluginMetadata) Option {
	return func(p *Plugin) {
		p.metadata = metadata
	}
}

// Plugin is the Scatter wallet plugin
type Plugin struct {
	env       Environment
	factories map[Environment]BackendFactory
	metadata  session.WalletPluginMetadata

	mu      sync.Mutex
	backend Backend
}

var _ session.WalletPlugin = (*Plugin)(nil)

// New returns a Plugin for the detected environment
func New(opts ...Option) *Plugin {
	p := &Plugin{
		env:       DetectEnvironment(),
		factories: make(map[Environment]BackendFactory),
		metadata:  DefaultMetadata,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// ID implements session.WalletPlugin
func (p *Plugin) ID() string {
	return ID
}

// Config implements session.WalletPlugin
func (p *Plugin) Config() session.WalletPluginConfig {
	return session.WalletPluginConfig{
		RequiresChainSelect:      true,
		RequiresPermissionSelect: false,
	}
}

// Metadata implements session.WalletPlugin
func (p *Plugin) Metadata() session.WalletPluginMetadata {
	return p.metadata
}

// Environment returns the environment the plugin runs in
func (p *Plugin) Environment() Environment {
	return p.env
}

// resolveBackend returns the backend, creating it on
// first use. Only the browser has a wallet to talk to.
func (p *Plugin) resolveBackend(op string) (Backend, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.backend != nil {
		return p.backend, nil
	}

	if p.env != EnvBrowser {
		return nil, newError(op, ErrEnvironmentUnsupported, errors.Errorf("%s environment has no wallet", p.env))
	}
	factory, ok := p.factories[p.env]
	if !ok || factory == nil {
		return nil, newError(op, ErrEnvironmentUnsupported, errors.Errorf("no backend registered for %s", p.env))
	}

	backend, err := factory()
	if err != nil {
		return nil, err
	}
	log.Debugf("created %s backend", p.env)

	p.backend = backend
	return backend, nil
}

// translator returns the translation function from ui.
// A nil pointer wrapped in ui counts as no ui.
func translator(op string, ui session.UserInterface) (session.Translator, error) {
	if isNil(ui) {
		return nil, newError(op, ErrMissingUI, nil)
	}
	t := ui.Translator(ID)
	if t == nil {
		return nil, newError(op, ErrMissingUI, errors.New("ui has no translator"))
	}
	return t, nil
}

func isNil(ui session.UserInterface) bool {
	if ui == nil {
		return true
	}
	v := reflect.ValueOf(ui)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Func, reflect.Interface, reflect.Slice, reflect.Chan:
		return v.IsNil()
	}
	return false
}

// Login implements session.WalletPlugin
func (p *Plugin) Login(ctx context.Context, lctx *session.LoginContext) (*session.WalletPluginLoginResponse, error) {
	const op = "login"

	if lctx == nil {
		return nil, newError(op, ErrMissingUI, errors.New("no login context"))
	}
	t, err := translator(op, lctx.UI)
	if err != nil {
		return nil, err
	}

	backend, err := p.resolveBackend(op)
	if err != nil {
		return nil, err
	}

	response, err := backend.Login(ctx, lctx)
	if err != nil {
		log.Warnf("%s: %v", t("error.login", "Login failed"), err)
		return nil, err
	}

	log.Infof("%s: %s on %s", t("login.success", "Logged in"), response.PermissionLevel, response.Chain)
	return response, nil
}

// Sign implements session.WalletPlugin
func (p *Plugin) Sign(ctx context.Context, resolved *session.ResolvedSigningRequest, tctx *session.TransactContext) (*session.WalletPluginSignResponse, error) {
	const op = "sign"

	if tctx == nil {
		return nil, newError(op, ErrMissingUI, errors.New("no transact context"))
	}
	t, err := translator(op, tctx.UI)
	if err != nil {
		return nil, err
	}

	backend, err := p.resolveBackend(op)
	if err != nil {
		return nil, err
	}

	response, err := backend.Sign(ctx, resolved, tctx)
	if err != nil {
		log.Warnf("%s: %v", t("error.sign", "Signing failed"), err)
		return nil, err
	}
	return response, nil
}

// Logout implements session.WalletPlugin
func (p *Plugin) Logout(ctx context.Context, lctx *session.LogoutContext) error {
	const op = "logout"

	if lctx == nil {
		return newError(op, ErrMissingUI, errors.New("no logout context"))
	}
	if _, err := translator(op, lctx.UI); err != nil {
		return err
	}

	backend, err := p.resolveBackend(op)
	if err != nil {
		return err
	}

	return backend.Logout(ctx, lctx)
}
