package usecases

import (
	"context"
	"strings"

	"cl-interface/internal/domain/entities"
	"cl-interface/internal/domain/errors"
	"cl-interface/internal/domain/interfaces"
	"cl-interface/internal/domain/services"
	"cl-interface/pkg/canonical"

	"github.com/sirupsen/logrus"
)

// ConfigureInterfaceUseCase는 인터페이스 요청을 분류하고 설정 레코드를 조립하는 유스케이스입니다
type ConfigureInterfaceUseCase struct {
	classifier *services.InterfaceClassifier
	assembler  *services.ConfigAssembler
	metrics    interfaces.MetricsRecorder
	clock      interfaces.Clock
	logger     *logrus.Logger
}

// NewConfigureInterfaceUseCase는 새로운 ConfigureInterfaceUseCase를 생성합니다
func NewConfigureInterfaceUseCase(
	classifier *services.InterfaceClassifier,
	assembler *services.ConfigAssembler,
	metrics interfaces.MetricsRecorder,
	clock interfaces.Clock,
	logger *logrus.Logger,
) *ConfigureInterfaceUseCase {
	return &ConfigureInterfaceUseCase{
		classifier: classifier,
		assembler:  assembler,
		metrics:    metrics,
		clock:      clock,
		logger:     logger,
	}
}

// ConfigureInterfaceInput은 유스케이스의 입력 파라미터입니다
type ConfigureInterfaceInput struct {
	Request entities.InterfaceRequest
}

// ConfigureInterfaceOutput은 유스케이스의 출력 결과입니다
type ConfigureInterfaceOutput struct {
	InterfaceType entities.InterfaceType
	Config        entities.InterfaceConfig
	Canonical     canonical.Map // Config의 정렬된 형태
}

// Execute는 인터페이스 설정 유스케이스를 실행합니다
func (uc *ConfigureInterfaceUseCase) Execute(ctx context.Context, input ConfigureInterfaceInput) (*ConfigureInterfaceOutput, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.NewSystemError("invocation cancelled", err)
	}

	startTime := uc.clock.Now()
	req := input.Request

	// 1. 인터페이스 타입 분류
	ifaceType, err := uc.classifier.Classify(req)
	if err != nil {
		uc.logger.WithError(err).WithField("name", req.Name).Error("Interface classification failed")
		uc.metrics.RecordError(strings.ToLower(string(errors.TypeOf(err))))
		return nil, err
	}

	uc.logger.WithFields(logrus.Fields{
		"name":      req.Name,
		"ifacetype": ifaceType,
	}).Info("Interface classified")

	// 2. 설정 레코드 조립 (루프백만 주소를 붙임)
	iface := uc.assembler.Assemble(ifaceType, req)

	if ifaceType == entities.InterfaceTypeLoopback && len(req.IPv6) > 0 {
		uc.logger.WithFields(logrus.Fields{
			"name": req.Name,
			"ipv6": req.IPv6,
		}).Warn("IPv6 addresses are not applied to loopback configuration")
	}

	addresses := iface.Addresses()
	uc.metrics.RecordClassification(ifaceType, len(addresses), uc.clock.Now().Sub(startTime).Seconds())

	uc.logger.WithFields(logrus.Fields{
		"name":      req.Name,
		"ifacetype": ifaceType,
		"addresses": addresses,
	}).Debug("Interface configuration assembled")

	return &ConfigureInterfaceOutput{
		InterfaceType: ifaceType,
		Config:        iface,
		Canonical:     canonical.SortDict(iface),
	}, nil
}
