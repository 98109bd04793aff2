package service

import (
	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/crypto"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
)

type ClientServices struct {
	CryptoService ClientCryptoService
	VaultService  ClientVaultService
	RemoteSync    RemoteSync
	SyncManager   *SyncManager
	SyncJob       ClientSyncJob
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, logger *logger.Logger) *ClientServices {
	keyChain := crypto.NewKeyChainService()
	cryptoSvc := NewClientCryptoService(keyChain)
	vaultSvc := NewClientVaultService(storages, keyChain, cryptoSvc, logger)
	remoteSvc := NewRemoteSyncService(serverAdapter, vaultSvc, storages, logger)
	manager := NewSyncManager(remoteSvc, storages.SessionStore, logger)

	return &ClientServices{
		CryptoService: cryptoSvc,
		VaultService:  vaultSvc,
		RemoteSync:    remoteSvc,
		SyncManager:   manager,
		SyncJob:       NewClientSyncJob(manager),
	}
}
