package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/shielded-nft/internal/adapter"
	"github.com/MKhiriev/shielded-nft/internal/logger"
	"github.com/MKhiriev/shielded-nft/internal/mock"
	"github.com/MKhiriev/shielded-nft/models"
)

const testID models.AssetID = "0190f5a8-6c1e-7c3a-9b7e-3f1d2c4b5a69"

type testApp struct {
	app     *App
	adapter *mock.MockRegistryAdapter
	in      *bytes.Buffer
	out     *bytes.Buffer
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	ctrl := gomock.NewController(t)
	registry := mock.NewMockRegistryAdapter(ctrl)
	in, out := &bytes.Buffer{}, &bytes.Buffer{}

	return &testApp{
		app:     NewApp(registry, models.NewAppBuildInfo("v1", "2026-10-01", "abc123"), in, out, logger.Nop()),
		adapter: registry,
		in:      in,
		out:     out,
	}
}

func decodeOutput[T any](t *testing.T, out *bytes.Buffer) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(out.Bytes(), &v), out.String())
	return v
}

func TestRun_Usage(t *testing.T) {
	ta := newTestApp(t)

	assert.ErrorIs(t, ta.app.Run(context.Background(), nil), ErrUsage)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"burn"}), ErrUnknownCommand)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"transfer", string(testID)}), ErrUsage)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"airdrop", string(testID)}), ErrUsage)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"list", "extra"}), ErrUsage)
	assert.ErrorIs(t, ta.app.Run(context.Background(), []string{"mint", "--bogus"}), ErrUsage)
	usage := ta.app.Usage()
	for _, command := range []string{"mint", "transfer", "view", "list", "viewing-key", "stake", "unstake", "airdrop", "export", "import"} {
		assert.Contains(t, usage, command)
	}
}

func TestRun_Version(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Version(gomock.Any()).Return("v9", nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))

	got := decodeOutput[map[string]string](t, ta.out)
	assert.Equal(t, "v1", got["client_version"])
	assert.Equal(t, "abc123", got["client_commit"])
	assert.Equal(t, "v9", got["server_version"])
}

func TestRun_VersionServerDown(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Version(gomock.Any()).Return("", adapter.ErrUnavailable)

	require.NoError(t, ta.app.Run(context.Background(), []string{"version"}))

	assert.Equal(t, "N/A", decodeOutput[map[string]string](t, ta.out)["server_version"])
}

func TestRun_Mint(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		Mint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MintRequest) (models.MintResponse, error) {
			assert.Equal(t, "alice", req.Owner)
			assert.Equal(t, "Art#1", req.Name)
			assert.Equal(t, "secret", req.Description)
			assert.Equal(t, []byte(`{"a":1}`), req.Attributes)
			require.NotNil(t, req.Shielded)
			assert.False(t, *req.Shielded)
			require.NotNil(t, req.LockMaturity)
			assert.Equal(t, models.Maturity(3), *req.LockMaturity)
			return models.MintResponse{ID: testID, ViewingKey: "vk"}, nil
		})

	err := ta.app.Run(context.Background(), []string{
		"mint", "--owner", "alice", "--name", "Art#1", "--description", "secret",
		"--attributes", `{"a":1}`, "--public", "--maturity", "3",
	})

	require.NoError(t, err)
	assert.Equal(t, models.MintResponse{ID: testID, ViewingKey: "vk"}, decodeOutput[models.MintResponse](t, ta.out))
}

func TestRun_MintDefaultsToShielded(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().
		Mint(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.MintRequest) (models.MintResponse, error) {
			assert.Nil(t, req.Shielded)
			assert.Nil(t, req.LockMaturity)
			assert.Nil(t, req.Attributes)
			return models.MintResponse{ID: testID}, nil
		})

	require.NoError(t, ta.app.Run(context.Background(), []string{"mint", "--owner", "alice", "--name", "x"}))
}

func TestRun_SimpleCommands(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		expect func(m *mock.MockRegistryAdapter)
		check  func(t *testing.T, out *bytes.Buffer)
	}{
		{
			name: "transfer",
			args: []string{"transfer", string(testID), "bob"},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().Transfer(gomock.Any(), testID, "bob").Return(nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Equal(t, "ok", decodeOutput[models.StatusResponse](t, out).Status)
			},
		},
		{
			name: "view with key",
			args: []string{"view", "--key", "vk", string(testID)},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().View(gomock.Any(), testID, models.ViewingKey("vk")).Return(models.RevealedNFT{ID: testID, Name: "Art"}, nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Equal(t, "Art", decodeOutput[models.RevealedNFT](t, out).Name)
			},
		},
		{
			name: "list by owner",
			args: []string{"list", "--owner", "alice"},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().List(gomock.Any(), "alice").Return([]models.RevealedNFT{{ID: testID}}, nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Len(t, decodeOutput[models.ListResponse](t, out).NFTs, 1)
			},
		},
		{
			name: "viewing key",
			args: []string{"viewing-key", string(testID), "alice"},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().IssueViewingKey(gomock.Any(), testID, "alice").Return(models.ViewingKey("vk"), nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Equal(t, models.ViewingKey("vk"), decodeOutput[models.ViewingKeyResponse](t, out).ViewingKey)
			},
		},
		{
			name: "stake",
			args: []string{"stake", string(testID)},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().Stake(gomock.Any(), testID).Return(nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Equal(t, "staked", decodeOutput[models.StatusResponse](t, out).Status)
			},
		},
		{
			name: "unstake",
			args: []string{"unstake", string(testID)},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().Unstake(gomock.Any(), testID).Return(nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Equal(t, "unstaked", decodeOutput[models.StatusResponse](t, out).Status)
			},
		},
		{
			name: "airdrop",
			args: []string{"airdrop", string(testID), "bob", "carol"},
			expect: func(m *mock.MockRegistryAdapter) {
				m.EXPECT().Airdrop(gomock.Any(), testID, []string{"bob", "carol"}).
					Return(models.AirdropResult{SourceID: testID, Outcomes: []models.AirdropOutcome{{Recipient: "bob"}, {Recipient: "carol"}}}, nil)
			},
			check: func(t *testing.T, out *bytes.Buffer) {
				assert.Len(t, decodeOutput[models.AirdropResult](t, out).Outcomes, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestApp(t)
			tt.expect(ta.adapter)

			require.NoError(t, ta.app.Run(context.Background(), tt.args))
			tt.check(t, ta.out)
		})
	}
}

func TestRun_AdapterErrorIsWrapped(t *testing.T) {
	ta := newTestApp(t)
	ta.adapter.EXPECT().Stake(gomock.Any(), testID).Return(adapter.ErrConflict)

	err := ta.app.Run(context.Background(), []string{"stake", string(testID)})

	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.True(t, strings.HasPrefix(err.Error(), "stake:"))
}

func TestRun_ExportImportFile(t *testing.T) {
	packet := []byte(`{"version":1,"kind":"shielded-nft","nft":{}}`)
	path := filepath.Join(t.TempDir(), "packet.json")

	ta := newTestApp(t)
	ta.adapter.EXPECT().Export(gomock.Any(), testID).Return(packet, nil)
	ta.adapter.EXPECT().Import(gomock.Any(), packet).Return(testID, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"export", "-o", path, string(testID)}))
	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, packet, written)

	ta.out.Reset()
	require.NoError(t, ta.app.Run(context.Background(), []string{"import", path}))
	assert.Equal(t, "imported", decodeOutput[models.StatusResponse](t, ta.out).Status)
}

func TestRun_FlagsDoNotLeakBetweenRuns(t *testing.T) {
	ta := newTestApp(t)
	gomock.InOrder(
		ta.adapter.EXPECT().List(gomock.Any(), "alice").Return(nil, nil),
		ta.adapter.EXPECT().List(gomock.Any(), "").Return(nil, nil),
	)

	require.NoError(t, ta.app.Run(context.Background(), []string{"list", "--owner", "alice"}))
	require.NoError(t, ta.app.Run(context.Background(), []string{"list"}))
}

func TestRun_ExportStdoutImportStdin(t *testing.T) {
	packet := []byte(`{"version":1}`)

	ta := newTestApp(t)
	ta.adapter.EXPECT().Export(gomock.Any(), testID).Return(packet, nil)
	ta.adapter.EXPECT().Import(gomock.Any(), append(append([]byte{}, packet...), '\n')).Return(testID, nil)

	require.NoError(t, ta.app.Run(context.Background(), []string{"export", string(testID)}))
	assert.Equal(t, string(packet)+"\n", ta.out.String())

	ta.in.Write(ta.out.Bytes())
	ta.out.Reset()
	require.NoError(t, ta.app.Run(context.Background(), []string{"import", "-"}))
}

func TestRun_ImportMissingFile(t *testing.T) {
	ta := newTestApp(t)

	err := ta.app.Run(context.Background(), []string{"import", filepath.Join(t.TempDir(), "nope")})

	require.Error(t, err)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
