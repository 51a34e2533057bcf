package providers

import (
	"github.com/samber/do/v2"

	"github.com/neuronspark/spark-server/internal/logger"
	"github.com/neuronspark/spark-server/internal/service"
)

// ProvideProfileService provides the profile service.
func ProvideProfileService(i do.Injector) (*service.ProfileService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewProfileService(storeHandle.Store, log.Logger), nil
}

// ProvideProgramService provides the study program service.
func ProvideProgramService(i do.Injector) (*service.ProgramService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewProgramService(storeHandle.Store, log.Logger), nil
}

// ProvideRoomService provides the study room service.
func ProvideRoomService(i do.Injector) (*service.RoomService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewRoomService(storeHandle.Store, log.Logger), nil
}

// ProvideMessageService provides the chat message service.
func ProvideMessageService(i do.Injector) (*service.MessageService, error) {
	storeHandle := do.MustInvoke[*StoreHandle](i)
	log := do.MustInvoke[*logger.Logger](i)
	return service.NewMessageService(storeHandle.Store, log.Logger), nil
}
