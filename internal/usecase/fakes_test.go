package usecase

import (
	"github.com/aalvaropc/fwkit/internal/domain"
)

type fakeEnvLoader struct {
	env *domain.Env
	err error

	calls int
}

func (f *fakeEnvLoader) LoadEnvFile(string) (*domain.Env, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.env.Clone(), nil
}

type fakeHeaderStore struct {
	files map[string][]byte
	err   error

	writes int
}

func newFakeHeaderStore() *fakeHeaderStore {
	return &fakeHeaderStore{files: map[string][]byte{}}
}

func (f *fakeHeaderStore) WriteHeader(path string, content []byte) error {
	if f.err != nil {
		return f.err
	}
	f.writes++
	f.files[path] = append([]byte(nil), content...)
	return nil
}

func (f *fakeHeaderStore) ReadHeader(path string) ([]byte, error) {
	b, ok := f.files[path]
	if !ok {
		return nil, &domain.OpError{Op: "fake.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
	}
	return b, nil
}

type fakeInitializer struct {
	spec  domain.ProjectSpec
	force bool
	err   error
}

func (f *fakeInitializer) Init(spec domain.ProjectSpec, force bool) error {
	f.spec = spec
	f.force = force
	return f.err
}

func validEnv() *domain.Env {
	env := domain.NewEnv()
	env.Set("WIFI_SSID", "home")
	env.Set("WIFI_PASSWORD", "hunter2")
	env.Set("MQTT_HOST", "broker.local")
	env.Set("MQTT_PORT", "1883")
	env.Set("MQTT_USERNAME", "esp")
	env.Set("MQTT_PASSWORD", "pw")
	env.Set("GITHUB_OWNER", "octo")
	env.Set("GITHUB_REPO", "matrix")
	return env
}
