package container

import (
	"go.uber.org/fx"

	"github.com/sergeii/netmon/internal/core/usecases/checkstatus"
	"github.com/sergeii/netmon/internal/core/usecases/getstatus"
	"github.com/sergeii/netmon/internal/core/usecases/listhistory"
	"github.com/sergeii/netmon/internal/core/usecases/recordstatus"
)

type Container struct {
	GetStatus    getstatus.UseCase
	ListHistory  listhistory.UseCase
	RecordStatus recordstatus.UseCase
	CheckStatus  checkstatus.UseCase
}

func New(
	getStatusUseCase getstatus.UseCase,
	listHistoryUseCase listhistory.UseCase,
	recordStatusUseCase recordstatus.UseCase,
	checkStatusUseCase checkstatus.UseCase,
) Container {
	return Container{
		GetStatus:    getStatusUseCase,
		ListHistory:  listHistoryUseCase,
		RecordStatus: recordStatusUseCase,
		CheckStatus:  checkStatusUseCase,
	}
}

var Module = fx.Module("container",
	fx.Provide(getstatus.New),
	fx.Provide(listhistory.New),
	fx.Provide(recordstatus.New),
	fx.Provide(checkstatus.New),
	fx.Provide(New),
)
