// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package providers

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
	"github.com/canonical/workspace-service/pkg/vendors"
)

//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_interfaces.go -source=./interfaces.go ServiceInterface,TxRunnerInterface,GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_vendors.go -source=../vendors/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_encryption.go -source=../../internal/encryption/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_events.go -source=../../internal/events/interfaces.go PublisherInterface
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package providers -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testTenantID = "0190f5c4-8a6e-7c3a-9b1e-2f4d5a6b7c8d"
	testUserID   = "user-123"
	testEntryID  = "0190f5c4-8a6e-7c3a-9b1e-000000000001"
)

var (
	errDBDown = errors.New("db down")

	testNow = time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	testTC  = &types.TenantContext{TenantID: testTenantID, UserID: testUserID, Role: types.RoleAdmin}
)

type serviceMocks struct {
	storage   *MockStorageInterface
	tx        *MockTxRunnerInterface
	registry  *MockRegistryInterface
	adapter   *MockAdapterInterface
	encrypter *MockEncrypterInterface
	publisher *MockPublisherInterface
	logger    *MockLoggerInterface
	tracer    *MockTracingInterface
	monitor   *MockMonitorInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		tx:        NewMockTxRunnerInterface(ctrl),
		registry:  NewMockRegistryInterface(ctrl),
		adapter:   NewMockAdapterInterface(ctrl),
		encrypter: NewMockEncrypterInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
		tracer:    NewMockTracingInterface(ctrl),
		monitor:   NewMockMonitorInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	s := NewService(m.storage, m.tx, m.registry, m.encrypter, m.publisher, time.Second, 2, m.tracer, m.monitor, m.logger)
	s.now = func() time.Time { return testNow }
	return s
}

func (m *serviceMocks) spans(names ...string) {
	for _, name := range names {
		m.tracer.EXPECT().Start(gomock.Any(), name).Return(context.Background(), trace.SpanFromContext(context.Background()))
	}
}

func (m *serviceMocks) passthroughTx() {
	m.tx.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		})
}

// emptyReconcile expects a pass over a tenant without valid credentials.
func (m *serviceMocks) emptyReconcile() {
	m.spans("providers.Service.Reconcile")
	m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return(nil, nil)
	m.passthroughTx()
}

func eventOfType(t events.EventType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(*events.Event)
		return ok && e.Type == t && e.TenantID == testTenantID
	})
}

func TestService_SaveCredential(t *testing.T) {
	testCases := []struct {
		name        string
		vendor      string
		cfg         *vendors.Config
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "unsupported vendor",
			vendor: "acme",
			cfg:    &vendors.Config{APIKey: "k"},
			setupMocks: func(m *serviceMocks) {
				m.spans("providers.Service.SaveCredential")
				m.registry.EXPECT().Get("acme").Return(nil, false)
			},
			expectedErr: ErrVendorNotSupported,
		},
		{
			name:   "missing api key",
			vendor: vendors.OpenAI,
			cfg:    &vendors.Config{},
			setupMocks: func(m *serviceMocks) {
				m.spans("providers.Service.SaveCredential")
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
			},
			expectedErr: ErrInvalidCredential,
		},
		{
			name:   "vendor rejects key and nothing is stored",
			vendor: vendors.OpenAI,
			cfg:    &vendors.Config{APIKey: "sk-bad"},
			setupMocks: func(m *serviceMocks) {
				m.spans("providers.Service.SaveCredential")
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.adapter.EXPECT().Validate(gomock.Any(), &vendors.Config{APIKey: "sk-bad"}).Return(false)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
			},
			expectedErr: ErrInvalidCredential,
		},
		{
			name:   "valid key is stored and reconciled",
			vendor: vendors.OpenAI,
			cfg:    &vendors.Config{APIKey: "sk-good"},
			setupMocks: func(m *serviceMocks) {
				m.spans("providers.Service.SaveCredential")
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true)
				m.encrypter.EXPECT().Encrypt(`{"apiKey":"sk-good"}`).Return("sealed", nil)
				m.storage.EXPECT().UpsertCredential(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, c *types.ProviderCredential) error {
						if c.TenantID != testTenantID || c.Vendor != vendors.OpenAI || c.EncryptedConfig != "sealed" || !c.IsValid {
							return fmt.Errorf("unexpected credential %+v", c)
						}
						if c.LastValidatedAt == nil || !c.LastValidatedAt.Equal(testNow) {
							return fmt.Errorf("unexpected validation time %v", c.LastValidatedAt)
						}
						return nil
					})
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.CredentialSaved))
				m.emptyReconcile()
			},
		},
		{
			name:   "reconcile failure does not fail the save",
			vendor: vendors.Gemini,
			cfg:    &vendors.Config{APIKey: "g-key"},
			setupMocks: func(m *serviceMocks) {
				m.spans("providers.Service.SaveCredential", "providers.Service.Reconcile")
				m.registry.EXPECT().Get(vendors.Gemini).Return(m.adapter, true)
				m.adapter.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(true)
				m.encrypter.EXPECT().Encrypt(gomock.Any()).Return("sealed", nil)
				m.storage.EXPECT().UpsertCredential(gomock.Any(), gomock.Any()).Return(nil)
				m.publisher.EXPECT().Publish(gomock.Any(), gomock.Any())
				m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return(nil, errors.New("db down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			summary, err := m.service().SaveCredential(context.Background(), testTC, tc.vendor, tc.cfg)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if !summary.IsValid || summary.Vendor != tc.vendor || !summary.LastValidatedAt.Equal(testNow) {
				t.Fatalf("unexpected summary %+v", summary)
			}
		})
	}
}

func TestService_DeleteCredential(t *testing.T) {
	testCases := []struct {
		name        string
		vendor      string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:   "cascades bindings and catalog",
			vendor: vendors.OpenAI,
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.passthroughTx()
				gomock.InOrder(
					m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, true).Return(&types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.OpenAI}, nil),
					m.storage.EXPECT().DeleteModelSettingsByVendor(gomock.Any(), testTenantID, vendors.OpenAI).Return(int64(1), nil),
					m.storage.EXPECT().DeleteCatalogEntriesByVendor(gomock.Any(), testTenantID, vendors.OpenAI).Return(int64(3), nil),
					m.storage.EXPECT().DeleteCredential(gomock.Any(), testTenantID, vendors.OpenAI).Return(nil),
				)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.CredentialDeleted))
			},
		},
		{
			name:   "credential missing",
			vendor: vendors.OpenAI,
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.passthroughTx()
				m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, true).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrCredentialNotFound,
		},
		{
			name:   "lock failure aborts before any delete",
			vendor: vendors.OpenAI,
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.passthroughTx()
				m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, true).Return(nil, errDBDown)
			},
			expectedErr: errDBDown,
		},
		{
			name:   "unsupported vendor",
			vendor: "acme",
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get("acme").Return(nil, false)
			},
			expectedErr: ErrVendorNotSupported,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.DeleteCredential")
			tc.setupMocks(m)

			err := m.service().DeleteCredential(context.Background(), testTC, tc.vendor)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetDecryptedConfig(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expected    *vendors.Config
		expectedErr error
	}{
		{
			name: "decrypts stored configuration",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCredential(gomock.Any(), testTenantID, vendors.OpenAI).Return(&types.ProviderCredential{EncryptedConfig: "sealed"}, nil)
				m.encrypter.EXPECT().Decrypt("sealed").Return(`{"apiKey":"sk-1","baseUrl":"https://proxy.local"}`, nil)
			},
			expected: &vendors.Config{APIKey: "sk-1", BaseURL: "https://proxy.local"},
		},
		{
			name: "missing credential",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCredential(gomock.Any(), testTenantID, vendors.OpenAI).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrCredentialNotFound,
		},
		{
			name: "undecryptable row",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetCredential(gomock.Any(), testTenantID, vendors.OpenAI).Return(&types.ProviderCredential{EncryptedConfig: "junk"}, nil)
				m.encrypter.EXPECT().Decrypt("junk").Return("", errors.New("message authentication failed"))
			},
			expectedErr: ErrDecryptFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.GetDecryptedConfig")
			tc.setupMocks(m)

			cfg, err := m.service().GetDecryptedConfig(context.Background(), testTenantID, vendors.OpenAI)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if *cfg != *tc.expected {
				t.Fatalf("expected %+v, got %+v", tc.expected, cfg)
			}
		})
	}
}

func TestService_ListCredentialsSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.spans("providers.Service.ListCredentialsSummary")
	m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, false).Return([]*types.ProviderCredential{
		{Vendor: vendors.Gemini, EncryptedConfig: "sealed", IsValid: true, LastValidatedAt: &testNow},
		{Vendor: vendors.OpenAI, EncryptedConfig: "sealed"},
	}, nil)

	summaries, err := m.service().ListCredentialsSummary(context.Background(), testTC)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(summaries) != 2 || summaries[0].Vendor != vendors.Gemini || !summaries[0].IsValid || summaries[1].IsValid {
		t.Fatalf("unexpected summaries %+v", summaries)
	}
}

func TestService_Reconcile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	openai := NewMockAdapterInterface(ctrl)
	gemini := NewMockAdapterInterface(ctrl)
	siliconflow := NewMockAdapterInterface(ctrl)

	m.spans("providers.Service.Reconcile")

	openaiCred := &types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.OpenAI, EncryptedConfig: "enc-openai", IsValid: true, UpdatedAt: testNow}
	geminiCred := &types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.Gemini, EncryptedConfig: "enc-gemini", IsValid: true, UpdatedAt: testNow}

	m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return([]*types.ProviderCredential{
		openaiCred,
		geminiCred,
		{TenantID: testTenantID, Vendor: vendors.SiliconFlow, EncryptedConfig: "enc-broken", IsValid: true},
	}, nil)

	m.registry.EXPECT().Get(vendors.OpenAI).Return(openai, true)
	m.registry.EXPECT().Get(vendors.Gemini).Return(gemini, true)
	m.registry.EXPECT().Get(vendors.SiliconFlow).Return(siliconflow, true)

	m.encrypter.EXPECT().Decrypt("enc-openai").Return(`{"apiKey":"sk"}`, nil)
	m.encrypter.EXPECT().Decrypt("enc-gemini").Return(`{"apiKey":"g"}`, nil)
	m.encrypter.EXPECT().Decrypt("enc-broken").Return("", errors.New("bad key"))
	m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any())

	openai.EXPECT().GetModels(gomock.Any(), &vendors.Config{APIKey: "sk"}).Return([]types.ModelDescriptor{
		{ID: "gpt-4o", DisplayName: "gpt-4o", Category: types.CategoryLLM},
		{ID: "tts-1", DisplayName: "tts-1", Category: types.CategoryTTS},
	}, nil)
	gemini.EXPECT().GetModels(gomock.Any(), &vendors.Config{APIKey: "g"}).Return(
		[]types.ModelDescriptor{{ID: "gemini-2.0-flash", DisplayName: "Gemini 2.0 Flash", Category: types.CategoryLLM}},
		fmt.Errorf("gemini: %w: status 503", vendors.ErrVendorUnreachable),
	)
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())

	m.passthroughTx()

	m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, false).Return(openaiCred, nil)
	m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.Gemini, false).Return(geminiCred, nil)

	m.storage.EXPECT().ListCatalogEntries(gomock.Any(), testTenantID, types.CatalogFilter{Vendor: vendors.OpenAI}).Return([]*types.CatalogEntry{
		{Vendor: vendors.OpenAI, ModelID: "gpt-4o", DisplayName: "gpt-4o", Category: types.CategoryLLM, Source: types.SourceAuto, Enabled: true},
		{Vendor: vendors.OpenAI, ModelID: "gpt-4", DisplayName: "gpt-4", Category: types.CategoryLLM, Source: types.SourceAuto, Enabled: true},
		{Vendor: vendors.OpenAI, ModelID: "my-model", DisplayName: "Mine", Category: types.CategoryLLM, Source: types.SourceCustom, Enabled: true},
	}, nil)
	m.storage.EXPECT().InsertCatalogEntryIfAbsent(gomock.Any(), gomock.Cond(func(x any) bool {
		e := x.(*types.CatalogEntry)
		return e.Vendor == vendors.OpenAI && e.ModelID == "tts-1" && e.Source == types.SourceAuto && e.Enabled
	})).Return(true, nil)
	m.storage.EXPECT().RetireAutoCatalogEntry(gomock.Any(), testTenantID, vendors.OpenAI, "gpt-4").Return(true, nil)
	m.storage.EXPECT().DeleteModelSettingsForModel(gomock.Any(), testTenantID, vendors.OpenAI, "gpt-4").Return(int64(1), nil)

	m.storage.EXPECT().ListCatalogEntries(gomock.Any(), testTenantID, types.CatalogFilter{Vendor: vendors.Gemini}).Return(nil, nil)
	m.storage.EXPECT().InsertCatalogEntryIfAbsent(gomock.Any(), gomock.Cond(func(x any) bool {
		e := x.(*types.CatalogEntry)
		return e.Vendor == vendors.Gemini && e.ModelID == "gemini-2.0-flash"
	})).Return(true, nil)

	m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.CatalogReconciled))

	report, err := m.service().Reconcile(context.Background(), testTenantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(report.Vendors) != 3 {
		t.Fatalf("expected 3 vendor reports, got %d", len(report.Vendors))
	}

	o, g, s := report.Vendors[0], report.Vendors[1], report.Vendors[2]
	if o.Mode != "live" || o.Inserted != 1 || o.Retired != 1 || o.Updated != 0 || o.Skipped {
		t.Errorf("unexpected openai report %+v", o)
	}
	if g.Mode != "fallback" || g.Inserted != 1 || g.Error == "" {
		t.Errorf("unexpected gemini report %+v", g)
	}
	if !s.Skipped || s.Error == "" {
		t.Errorf("unexpected siliconflow report %+v", s)
	}
}

func TestService_ReconcileSkipsRejectedCredential(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.spans("providers.Service.Reconcile")

	m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return([]*types.ProviderCredential{
		{TenantID: testTenantID, Vendor: vendors.OpenAI, EncryptedConfig: "enc", IsValid: true},
	}, nil)
	m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
	m.encrypter.EXPECT().Decrypt("enc").Return(`{"apiKey":""}`, nil)
	m.adapter.EXPECT().GetModels(gomock.Any(), gomock.Any()).Return(nil, vendors.ErrInvalidCredential)
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())
	m.passthroughTx()

	report, err := m.service().Reconcile(context.Background(), testTenantID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if report.Changed() || !report.Vendors[0].Skipped {
		t.Fatalf("unexpected report %+v", report.Vendors[0])
	}
}

func TestService_ReconcileSkipsCredentialChangedMidPass(t *testing.T) {
	later := testNow.Add(time.Minute)

	testCases := []struct {
		name   string
		locked *types.ProviderCredential
		err    error
	}{
		{
			name: "credential deleted",
			err:  storage.ErrNotFound,
		},
		{
			name:   "credential replaced",
			locked: &types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.OpenAI, IsValid: true, UpdatedAt: later},
		},
		{
			name:   "credential invalidated",
			locked: &types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.OpenAI, IsValid: false, UpdatedAt: testNow},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.Reconcile")

			m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return([]*types.ProviderCredential{
				{TenantID: testTenantID, Vendor: vendors.OpenAI, EncryptedConfig: "enc", IsValid: true, UpdatedAt: testNow},
			}, nil)
			m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
			m.encrypter.EXPECT().Decrypt("enc").Return(`{"apiKey":"sk"}`, nil)
			m.adapter.EXPECT().GetModels(gomock.Any(), gomock.Any()).Return([]types.ModelDescriptor{{ID: "gpt-4o", DisplayName: "gpt-4o", Category: types.CategoryLLM}}, nil)
			m.passthroughTx()
			m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, false).Return(tc.locked, tc.err)
			m.storage.EXPECT().ListCatalogEntries(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
			m.storage.EXPECT().InsertCatalogEntryIfAbsent(gomock.Any(), gomock.Any()).Times(0)

			report, err := m.service().Reconcile(context.Background(), testTenantID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			vr := report.Vendors[0]
			if report.Changed() || !vr.Skipped || vr.Error != ErrCredentialChanged.Error() {
				t.Fatalf("unexpected report %+v", vr)
			}
		})
	}
}

func TestService_ReconcileAbortsOnWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.spans("providers.Service.Reconcile")

	m.storage.EXPECT().ListCredentials(gomock.Any(), testTenantID, true).Return([]*types.ProviderCredential{
		{TenantID: testTenantID, Vendor: vendors.OpenAI, EncryptedConfig: "enc", IsValid: true},
	}, nil)
	m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
	m.encrypter.EXPECT().Decrypt("enc").Return(`{"apiKey":"sk"}`, nil)
	m.adapter.EXPECT().GetModels(gomock.Any(), gomock.Any()).Return([]types.ModelDescriptor{{ID: "gpt-4o", DisplayName: "gpt-4o", Category: types.CategoryLLM}}, nil)
	m.passthroughTx()
	m.storage.EXPECT().LockCredential(gomock.Any(), testTenantID, vendors.OpenAI, false).Return(&types.ProviderCredential{TenantID: testTenantID, Vendor: vendors.OpenAI, IsValid: true}, nil)
	m.storage.EXPECT().ListCatalogEntries(gomock.Any(), testTenantID, gomock.Any()).Return(nil, nil)
	m.storage.EXPECT().InsertCatalogEntryIfAbsent(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))

	if _, err := m.service().Reconcile(context.Background(), testTenantID); err == nil {
		t.Fatal("expected error")
	}
}

func TestService_GetAvailableModels(t *testing.T) {
	testCases := []struct {
		name        string
		category    types.ModelCategory
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:     "reconciles then lists enabled models of a category",
			category: types.CategoryEmbedding,
			setupMocks: func(m *serviceMocks) {
				m.emptyReconcile()
				m.storage.EXPECT().ListCatalogEntries(gomock.Any(), testTenantID, types.CatalogFilter{Category: types.CategoryEmbedding, EnabledOnly: true}).Return([]*types.CatalogEntry{{ModelID: "text-embedding-3-small"}}, nil)
			},
		},
		{
			name:        "unknown category",
			category:    "video",
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidCategory,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.GetAvailableModels")
			tc.setupMocks(m)

			_, err := m.service().GetAvailableModels(context.Background(), testTC, tc.category)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_GetCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.spans("providers.Service.GetCatalog")
	m.emptyReconcile()
	m.storage.EXPECT().ListCatalogEntries(gomock.Any(), testTenantID, types.CatalogFilter{}).Return([]*types.CatalogEntry{{ModelID: "a"}, {ModelID: "b", Enabled: false}}, nil)

	entries, err := m.service().GetCatalog(context.Background(), testTC, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
}

func TestService_CreateCustomModel(t *testing.T) {
	testCases := []struct {
		name        string
		input       *CustomModel
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "creates an enabled custom entry",
			input: &CustomModel{Vendor: vendors.OpenAI, ModelID: " my-model ", Category: types.CategoryLLM},
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.storage.EXPECT().InsertCatalogEntry(gomock.Any(), &types.CatalogEntry{
					TenantID:    testTenantID,
					Vendor:      vendors.OpenAI,
					ModelID:     "my-model",
					DisplayName: "my-model",
					Category:    types.CategoryLLM,
					Source:      types.SourceCustom,
					Enabled:     true,
				}).Return(&types.CatalogEntry{ID: testEntryID, ModelID: "my-model", Source: types.SourceCustom, Enabled: true}, nil)
			},
		},
		{
			name:  "duplicate model",
			input: &CustomModel{Vendor: vendors.OpenAI, ModelID: "gpt-4o", Category: types.CategoryLLM},
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
				m.storage.EXPECT().InsertCatalogEntry(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrModelAlreadyExists,
		},
		{
			name:  "invalid category",
			input: &CustomModel{Vendor: vendors.OpenAI, ModelID: "x", Category: "video"},
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get(vendors.OpenAI).Return(m.adapter, true)
			},
			expectedErr: ErrInvalidCategory,
		},
		{
			name:  "unsupported vendor",
			input: &CustomModel{Vendor: "acme", ModelID: "x", Category: types.CategoryLLM},
			setupMocks: func(m *serviceMocks) {
				m.registry.EXPECT().Get("acme").Return(nil, false)
			},
			expectedErr: ErrVendorNotSupported,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.CreateCustomModel")
			tc.setupMocks(m)

			entry, err := m.service().CreateCustomModel(context.Background(), testTC, tc.input)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if entry.ID != testEntryID {
				t.Fatalf("unexpected entry %+v", entry)
			}
		})
	}
}

func TestService_UpdateTenantModel(t *testing.T) {
	disable := false
	rename := "Renamed"
	embedding := types.CategoryEmbedding
	video := types.ModelCategory("video")

	auto := func() *types.CatalogEntry {
		return &types.CatalogEntry{ID: testEntryID, TenantID: testTenantID, Vendor: vendors.OpenAI, ModelID: "gpt-4o", DisplayName: "gpt-4o", Category: types.CategoryLLM, Source: types.SourceAuto, Enabled: true}
	}
	custom := func() *types.CatalogEntry {
		e := auto()
		e.Source = types.SourceCustom
		e.ModelID = "my-model"
		return e
	}

	testCases := []struct {
		name        string
		id          string
		patch       *ModelPatch
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "disabling an auto entry drops its bindings",
			id:    testEntryID,
			patch: &ModelPatch{Enabled: &disable},
			setupMocks: func(m *serviceMocks) {
				m.passthroughTx()
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(auto(), nil)
				m.storage.EXPECT().UpdateCatalogEntry(gomock.Any(), gomock.Any(), []string{"enabled"}).Return(nil)
				m.storage.EXPECT().DeleteModelSettingsForModel(gomock.Any(), testTenantID, vendors.OpenAI, "gpt-4o").Return(int64(1), nil)
				disabled := auto()
				disabled.Enabled = false
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(disabled, nil)
			},
		},
		{
			name:  "renaming an auto entry is rejected",
			id:    testEntryID,
			patch: &ModelPatch{DisplayName: &rename, Enabled: &disable},
			setupMocks: func(m *serviceMocks) {
				m.passthroughTx()
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(auto(), nil)
			},
			expectedErr: ErrAutoModelReadOnly,
		},
		{
			name:  "custom entry accepts name and category",
			id:    testEntryID,
			patch: &ModelPatch{DisplayName: &rename, Category: &embedding},
			setupMocks: func(m *serviceMocks) {
				m.passthroughTx()
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(custom(), nil)
				m.storage.EXPECT().UpdateCatalogEntry(gomock.Any(), gomock.Cond(func(x any) bool {
					e := x.(*types.CatalogEntry)
					return e.DisplayName == rename && e.Category == embedding
				}), []string{"displayName", "category"}).Return(nil)
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(custom(), nil)
			},
		},
		{
			name:        "invalid category",
			id:          testEntryID,
			patch:       &ModelPatch{Category: &video},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrInvalidCategory,
		},
		{
			name:  "unknown entry",
			id:    testEntryID,
			patch: &ModelPatch{Enabled: &disable},
			setupMocks: func(m *serviceMocks) {
				m.passthroughTx()
				m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrModelNotFound,
		},
		{
			name:  "malformed id",
			id:    "not-a-uuid",
			patch: &ModelPatch{Enabled: &disable},
			setupMocks: func(m *serviceMocks) {
				m.passthroughTx()
			},
			expectedErr: ErrModelNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.UpdateTenantModel")
			tc.setupMocks(m)

			_, err := m.service().UpdateTenantModel(context.Background(), testTC, tc.id, tc.patch)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_DeleteTenantModel(t *testing.T) {
	testCases := []struct {
		name        string
		entry       *types.CatalogEntry
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "custom entry and its bindings are removed",
			entry: &types.CatalogEntry{ID: testEntryID, Vendor: vendors.OpenAI, ModelID: "my-model", Source: types.SourceCustom},
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().DeleteModelSettingsForModel(gomock.Any(), testTenantID, vendors.OpenAI, "my-model").Return(int64(1), nil)
				m.storage.EXPECT().DeleteCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(nil)
			},
		},
		{
			name:        "auto entries cannot be deleted",
			entry:       &types.CatalogEntry{ID: testEntryID, Vendor: vendors.OpenAI, ModelID: "gpt-4o", Source: types.SourceAuto},
			setupMocks:  func(*serviceMocks) {},
			expectedErr: ErrCannotDeleteAutoModel,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			m.spans("providers.Service.DeleteTenantModel")
			m.passthroughTx()
			m.storage.EXPECT().GetCatalogEntry(gomock.Any(), testTenantID, testEntryID).Return(tc.entry, nil)
			tc.setupMocks(m)

			err := m.service().DeleteTenantModel(context.Background(), testTC, testEntryID)

			if tc.expectedErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expectedErr != nil && !errors.Is(err, tc.expectedErr) {
				t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
			}
		})
	}
}

func TestService_ModelSettings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	s := m.service()

	m.spans("providers.Service.UpdateModelSetting")
	binding := &types.DefaultModelBinding{TenantID: testTenantID, Category: types.CategoryLLM, Vendor: vendors.OpenAI, ModelID: "gpt-4o"}
	m.storage.EXPECT().UpsertModelSetting(gomock.Any(), binding).Return(binding, nil)

	if _, err := s.UpdateModelSetting(context.Background(), testTC, &types.DefaultModelBinding{Category: types.CategoryLLM, Vendor: vendors.OpenAI, ModelID: "gpt-4o"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	m.spans("providers.Service.UpdateModelSetting")
	if _, err := s.UpdateModelSetting(context.Background(), testTC, &types.DefaultModelBinding{Category: "video", Vendor: vendors.OpenAI, ModelID: "x"}); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}

	m.spans("providers.Service.GetModelSettings")
	m.storage.EXPECT().ListModelSettings(gomock.Any(), testTenantID).Return([]*types.DefaultModelBinding{binding}, nil)

	settings, err := s.GetModelSettings(context.Background(), testTC)
	if err != nil || len(settings) != 1 {
		t.Fatalf("unexpected result %v %v", settings, err)
	}

	m.spans("providers.Service.DeleteModelSetting")
	m.storage.EXPECT().DeleteModelSetting(gomock.Any(), testTenantID, types.CategoryTTS).Return(storage.ErrNotFound)

	if err := s.DeleteModelSetting(context.Background(), testTC, types.CategoryTTS); !errors.Is(err, ErrSettingNotFound) {
		t.Fatalf("expected ErrSettingNotFound, got %v", err)
	}
}
