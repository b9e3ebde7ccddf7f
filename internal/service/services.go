package service

import (
	"crypto/rand"

	"github.com/MKhiriev/go-pass-html/internal/config"
	"github.com/MKhiriev/go-pass-html/internal/crypto"
	"github.com/MKhiriev/go-pass-html/internal/logger"
	"github.com/MKhiriev/go-pass-html/internal/store"
	"github.com/MKhiriev/go-pass-html/internal/utils"
	"github.com/MKhiriev/go-pass-html/internal/workers"
)

type Services struct {
	CodecService  CodecService
	ImportService ImportService
	VaultService  VaultService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	codec := NewCodecValidationService(cfg.App.Type).
		Wrap(NewCodecService(crypto.NewSelector(), rand.Reader, workers.NewPool(cfg.Codec.ChunkWorkers), logger))
	importer := NewImportService(logger)

	return &Services{
		CodecService:  codec,
		ImportService: importer,
		VaultService:  NewVaultService(cfg.App.Type, storages.Slot, codec, importer, utils.NewUUIDGenerator(), logger),
	}
}
