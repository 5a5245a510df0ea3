// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package tenant

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/canonical/workspace-service/internal/events"
	"github.com/canonical/workspace-service/internal/storage"
	"github.com/canonical/workspace-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_interfaces.go -source=./interfaces.go ServiceInterface,TxRunnerInterface,IdentityInterface,GuardInterface
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_storage.go -source=../../internal/storage/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_events.go -source=../../internal/events/interfaces.go PublisherInterface
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package tenant -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

const (
	testTenantID = "0190f5c4-8a6e-7c3a-9b1e-2f4d5a6b7c8d"
	testOtherID  = "0190f5c4-8a6e-7c3a-9b1e-2f4d5a6b7c8e"
	testUserID   = "user-123"
	testMemberID = "user-456"
)

type serviceMocks struct {
	storage   *MockStorageInterface
	tx        *MockTxRunnerInterface
	identity  *MockIdentityInterface
	publisher *MockPublisherInterface
	logger    *MockLoggerInterface
	security  *MockSecurityLoggerInterface
	tracer    *MockTracingInterface
	monitor   *MockMonitorInterface
}

func newServiceMocks(ctrl *gomock.Controller) *serviceMocks {
	return &serviceMocks{
		storage:   NewMockStorageInterface(ctrl),
		tx:        NewMockTxRunnerInterface(ctrl),
		identity:  NewMockIdentityInterface(ctrl),
		publisher: NewMockPublisherInterface(ctrl),
		logger:    NewMockLoggerInterface(ctrl),
		security:  NewMockSecurityLoggerInterface(ctrl),
		tracer:    NewMockTracingInterface(ctrl),
		monitor:   NewMockMonitorInterface(ctrl),
	}
}

func (m *serviceMocks) service() *Service {
	return NewService(m.storage, m.tx, m.identity, m.publisher, m.tracer, m.monitor, m.logger)
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

func (m *serviceMocks) adminAction(action string) {
	m.logger.EXPECT().Security().Return(m.security)
	m.security.EXPECT().AdminAction(testUserID, action, gomock.Any())
}

func eventOfType(t events.EventType) gomock.Matcher {
	return gomock.Cond(func(x any) bool {
		e, ok := x.(*events.Event)
		return ok && e.Type == t
	})
}

func TestService_CreateTenant(t *testing.T) {
	testCases := []struct {
		name        string
		tenantName  string
		description string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:       "empty name",
			tenantName: "   ",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.CreateTenant")
			},
			expectedErr: ErrInvalidTenant,
		},
		{
			name:       "name too long",
			tenantName: strings.Repeat("a", 51),
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.CreateTenant")
			},
			expectedErr: ErrInvalidTenant,
		},
		{
			name:        "description too long",
			tenantName:  "Acme",
			description: strings.Repeat("d", 201),
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.CreateTenant")
			},
			expectedErr: ErrInvalidTenant,
		},
		{
			name:       "owner membership becomes current",
			tenantName: " Acme ",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.CreateTenant")
				m.passthroughTx()
				gomock.InOrder(
					m.storage.EXPECT().CreateTenant(gomock.Any(), &types.Tenant{
						Name:    "Acme",
						Plan:    types.DefaultPlan,
						Status:  types.DefaultStatus,
						OwnerID: testUserID,
					}).Return(&types.Tenant{ID: testTenantID, Name: "Acme", OwnerID: testUserID}, nil),
					m.storage.EXPECT().LockUserMemberships(gomock.Any(), testUserID).Return(nil, nil),
					m.storage.EXPECT().ClearCurrentMemberships(gomock.Any(), testUserID).Return(nil),
					m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{
						TenantID: testTenantID,
						UserID:   testUserID,
						Role:     types.RoleOwner,
						Current:  true,
					}).Return(&types.Membership{TenantID: testTenantID, UserID: testUserID, Role: types.RoleOwner, Current: true}, nil),
				)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.TenantCreated))
			},
		},
		{
			name:       "failed owner membership aborts the transaction",
			tenantName: "Acme",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.CreateTenant")
				m.passthroughTx()
				m.storage.EXPECT().CreateTenant(gomock.Any(), gomock.Any()).Return(&types.Tenant{ID: testTenantID}, nil)
				m.storage.EXPECT().LockUserMemberships(gomock.Any(), testUserID).Return(nil, nil)
				m.storage.EXPECT().ClearCurrentMemberships(gomock.Any(), testUserID).Return(nil)
				m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
			},
			expectedErr: errors.New("failed to add owner: boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			created, err := m.service().CreateTenant(context.Background(), testUserID, tc.tenantName, tc.description)

			if tc.expectedErr != nil {
				if err == nil {
					t.Fatalf("expected error %v, got nil", tc.expectedErr)
				}
				if !errors.Is(err, tc.expectedErr) && err.Error() != tc.expectedErr.Error() {
					t.Fatalf("expected error %v, got %v", tc.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if created.ID != testTenantID {
				t.Fatalf("expected tenant %s, got %s", testTenantID, created.ID)
			}
		})
	}
}

func TestService_SwitchTenant(t *testing.T) {
	testCases := []struct {
		name        string
		tenantID    string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:     "malformed tenant id",
			tenantID: "not-a-uuid",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.SwitchTenant")
			},
			expectedErr: ErrNotAMember,
		},
		{
			name:     "not a member of the target",
			tenantID: testOtherID,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.SwitchTenant")
				m.passthroughTx()
				m.storage.EXPECT().LockUserMemberships(gomock.Any(), testUserID).Return([]*types.Membership{
					{TenantID: testTenantID, UserID: testUserID, Current: true},
				}, nil)
			},
			expectedErr: ErrNotAMember,
		},
		{
			name:     "current flag moves to the target",
			tenantID: testOtherID,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.SwitchTenant")
				m.passthroughTx()
				gomock.InOrder(
					m.storage.EXPECT().LockUserMemberships(gomock.Any(), testUserID).Return([]*types.Membership{
						{TenantID: testTenantID, UserID: testUserID, Current: true},
						{TenantID: testOtherID, UserID: testUserID},
					}, nil),
					m.storage.EXPECT().ClearCurrentMemberships(gomock.Any(), testUserID).Return(nil),
					m.storage.EXPECT().SetCurrentMembership(gomock.Any(), testOtherID, testUserID).Return(nil),
				)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.TenantSwitched))
			},
		},
		{
			name:     "set failure is returned",
			tenantID: testOtherID,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.SwitchTenant")
				m.passthroughTx()
				m.storage.EXPECT().LockUserMemberships(gomock.Any(), testUserID).Return([]*types.Membership{
					{TenantID: testOtherID, UserID: testUserID},
				}, nil)
				m.storage.EXPECT().ClearCurrentMemberships(gomock.Any(), testUserID).Return(nil)
				m.storage.EXPECT().SetCurrentMembership(gomock.Any(), testOtherID, testUserID).Return(errors.New("boom"))
			},
			expectedErr: errors.New("failed to set current tenant: boom"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			err := m.service().SwitchTenant(context.Background(), testUserID, tc.tenantID)
			checkErr(t, err, tc.expectedErr)
		})
	}
}

func TestService_DeleteTenant(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "memberships then tenant",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.DeleteTenant")
				m.passthroughTx()
				gomock.InOrder(
					m.storage.EXPECT().DeleteMembershipsByTenantID(gomock.Any(), testTenantID).Return(nil),
					m.storage.EXPECT().DeleteTenant(gomock.Any(), testTenantID).Return(nil),
				)
				m.adminAction("delete_tenant")
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.TenantDeleted))
			},
		},
		{
			name: "tenant not found",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.DeleteTenant")
				m.passthroughTx()
				m.storage.EXPECT().DeleteMembershipsByTenantID(gomock.Any(), testTenantID).Return(nil)
				m.storage.EXPECT().DeleteTenant(gomock.Any(), testTenantID).Return(storage.ErrNotFound)
			},
			expectedErr: ErrTenantNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			err := m.service().DeleteTenant(context.Background(), testTenantID, testUserID)
			checkErr(t, err, tc.expectedErr)
		})
	}
}

func TestService_UpdateTenant(t *testing.T) {
	name := "Renamed"
	long := strings.Repeat("d", 201)

	testCases := []struct {
		name        string
		patch       *TenantPatch
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name:  "description too long",
			patch: &TenantPatch{Description: &long},
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateTenant")
			},
			expectedErr: ErrInvalidTenant,
		},
		{
			name:  "rename",
			patch: &TenantPatch{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateTenant", "tenant.Service.GetTenant")
				m.storage.EXPECT().UpdateTenant(gomock.Any(), &types.Tenant{ID: testTenantID, Name: name}, []string{"name"}).Return(nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), testTenantID).Return(&types.Tenant{ID: testTenantID, Name: name}, nil)
			},
		},
		{
			name:  "unknown tenant",
			patch: &TenantPatch{Name: &name},
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateTenant")
				m.storage.EXPECT().UpdateTenant(gomock.Any(), gomock.Any(), gomock.Any()).Return(storage.ErrNotFound)
			},
			expectedErr: ErrTenantNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			_, err := m.service().UpdateTenant(context.Background(), testTenantID, tc.patch)
			checkErr(t, err, tc.expectedErr)
		})
	}
}

func TestService_GetCurrentTenant(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "no workspace yet",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.GetCurrentTenant")
				m.storage.EXPECT().GetCurrentMembership(gomock.Any(), testUserID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrTenantNotFound,
		},
		{
			name: "current membership",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.GetCurrentTenant", "tenant.Service.GetTenant")
				m.storage.EXPECT().GetCurrentMembership(gomock.Any(), testUserID).Return(&types.Membership{TenantID: testTenantID, Role: types.RoleEditor, Current: true}, nil)
				m.storage.EXPECT().GetTenantByID(gomock.Any(), testTenantID).Return(&types.Tenant{ID: testTenantID}, nil)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			ut, err := m.service().GetCurrentTenant(context.Background(), testUserID)
			checkErr(t, err, tc.expectedErr)

			if err == nil && (ut.Role != types.RoleEditor || !ut.Current || ut.ID != testTenantID) {
				t.Fatalf("unexpected current tenant %+v", ut)
			}
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "owner cannot be invited",
			role: types.RoleOwner,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
			},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "unknown role",
			role: types.Role("superuser"),
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
			},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "no account for email",
			role: types.RoleEditor,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return("", nil)
			},
			expectedErr: ErrUserNotFound,
		},
		{
			name: "already a member",
			role: types.RoleEditor,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return(testMemberID, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{}, nil)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name: "concurrent invite loses the race",
			role: types.RoleEditor,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return(testMemberID, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), gomock.Any()).Return(nil, storage.ErrDuplicateKey)
			},
			expectedErr: ErrAlreadyMember,
		},
		{
			name: "role defaults to normal",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.InviteMember")
				m.identity.EXPECT().GetIdentityIDByEmail(gomock.Any(), "bob@example.com").Return(testMemberID, nil)
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(nil, storage.ErrNotFound)
				m.storage.EXPECT().AddMember(gomock.Any(), &types.Membership{
					TenantID:  testTenantID,
					UserID:    testMemberID,
					Role:      types.RoleNormal,
					InvitedBy: testUserID,
				}).Return(&types.Membership{TenantID: testTenantID, UserID: testMemberID, Role: types.RoleNormal}, nil)
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.MemberInvited))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			_, err := m.service().InviteMember(context.Background(), testTenantID, " Bob@Example.com ", tc.role, testUserID)
			checkErr(t, err, tc.expectedErr)
		})
	}
}

func TestService_UpdateMemberRole(t *testing.T) {
	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "promotion to owner",
			role: types.RoleOwner,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateMemberRole")
			},
			expectedErr: ErrInvalidRole,
		},
		{
			name: "member not found",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateMemberRole")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: ErrMemberNotFound,
		},
		{
			name: "owner is immutable",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateMemberRole")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleOwner}, nil)
			},
			expectedErr: ErrCannotModifyOwner,
		},
		{
			name: "unchanged role writes nothing",
			role: types.RoleEditor,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateMemberRole")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleEditor}, nil)
			},
		},
		{
			name: "role updated",
			role: types.RoleAdmin,
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.UpdateMemberRole")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleEditor}, nil)
				m.storage.EXPECT().UpdateMemberRole(gomock.Any(), testTenantID, testMemberID, types.RoleAdmin).Return(nil)
				m.adminAction("update_member_role")
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.MemberUpdated))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			updated, err := m.service().UpdateMemberRole(context.Background(), testTenantID, testMemberID, tc.role, testUserID)
			checkErr(t, err, tc.expectedErr)

			if err == nil && updated.Role != tc.role {
				t.Fatalf("expected role %s, got %s", tc.role, updated.Role)
			}
		})
	}
}

func TestService_RemoveMember(t *testing.T) {
	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "owner cannot be removed",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.RemoveMember")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleOwner}, nil)
			},
			expectedErr: ErrCannotModifyOwner,
		},
		{
			name: "member removed",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.RemoveMember")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleNormal}, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), testTenantID, testMemberID).Return(nil)
				m.adminAction("remove_member")
				m.publisher.EXPECT().Publish(gomock.Any(), eventOfType(events.MemberRemoved))
			},
		},
		{
			name: "removed concurrently",
			setupMocks: func(m *serviceMocks) {
				m.spans("tenant.Service.RemoveMember")
				m.storage.EXPECT().GetMembership(gomock.Any(), testTenantID, testMemberID).Return(&types.Membership{Role: types.RoleNormal}, nil)
				m.storage.EXPECT().RemoveMember(gomock.Any(), testTenantID, testMemberID).Return(storage.ErrNotFound)
			},
			expectedErr: ErrMemberNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			m := newServiceMocks(ctrl)
			tc.setupMocks(m)

			err := m.service().RemoveMember(context.Background(), testTenantID, testMemberID, testUserID)
			checkErr(t, err, tc.expectedErr)
		})
	}
}

func TestService_ListMembers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := newServiceMocks(ctrl)
	m.spans("tenant.Service.ListMembers")
	m.storage.EXPECT().ListMembersByTenantID(gomock.Any(), testTenantID, int64(1), int64(50)).Return([]*types.Membership{
		{UserID: testUserID, Role: types.RoleOwner},
		{UserID: testMemberID, Role: types.RoleNormal, InvitedBy: testUserID},
	}, nil)
	m.identity.EXPECT().GetIdentityEmail(gomock.Any(), testUserID).Return("owner@example.com", nil)
	m.identity.EXPECT().GetIdentityEmail(gomock.Any(), testMemberID).Return("", errors.New("kratos down"))
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any())

	users, err := m.service().ListMembers(context.Background(), testTenantID, 1, 50)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(users) != 2 {
		t.Fatalf("expected 2 members, got %d", len(users))
	}
	if users[0].Email != "owner@example.com" || users[1].Email != "" || users[1].InvitedBy != testUserID {
		t.Fatalf("unexpected members %+v %+v", users[0], users[1])
	}
}

func checkErr(t *testing.T, err, expected error) {
	t.Helper()

	if expected == nil {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		return
	}

	if err == nil {
		t.Fatalf("expected error %v, got nil", expected)
	}
	if !errors.Is(err, expected) && err.Error() != expected.Error() {
		t.Fatalf("expected error %v, got %v", expected, err)
	}
}
