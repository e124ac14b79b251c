package provider

import (
	"homework-show/biz/application/service"
	"homework-show/biz/infrastructure/config"
	"homework-show/biz/infrastructure/media"
	"homework-show/biz/infrastructure/repository/homework"
	"homework-show/biz/infrastructure/repository/user"
	"homework-show/biz/infrastructure/storage"

	"github.com/google/wire"
)

var provider *Provider

func Init() {
	var err error
	provider, err = NewProvider()
	if err != nil {
		panic(err)
	}
}

// Provider 提供controller依赖的对象
type Provider struct {
	Config              *config.Config
	UserService         service.IUserService
	VerificationService service.IVerificationService
	HomeworkService     service.IHomeworkService
	UploadService       service.IUploadService
}

func Get() *Provider {
	return provider
}

var ApplicationSet = wire.NewSet(
	service.UserServiceSet,
	service.VerificationServiceSet,
	service.HomeworkServiceSet,
	service.UploadServiceSet,
)

var InfrastructureSet = wire.NewSet(
	config.NewConfig,
	user.NewMongoMapper,
	homework.NewDynamoMapper,
	storage.NewS3Client,
	wire.Bind(new(media.ObjectStore), new(*storage.S3Client)),
	media.NewFFmpeg,
	media.NewTranscoder,
	media.NewPosterCache,
)

var AllProvider = wire.NewSet(
	ApplicationSet,
	InfrastructureSet,
)
