package services

import (
	"cl-interface/internal/domain/entities"
)

// ConfigAssembler는 인터페이스 타입과 요청으로부터 설정 레코드를 조립하는 도메인 서비스입니다
type ConfigAssembler struct{}

// NewConfigAssembler는 새로운 ConfigAssembler를 생성합니다
func NewConfigAssembler() *ConfigAssembler {
	return &ConfigAssembler{}
}

// Assemble은 타입 태그를 가진 레코드를 만들고, 루프백 타입일 때만 IPv4 주소를 붙입니다
func (a *ConfigAssembler) Assemble(ifaceType entities.InterfaceType, req entities.InterfaceRequest) entities.InterfaceConfig {
	iface := entities.NewInterfaceConfig(ifaceType)

	if ifaceType == entities.InterfaceTypeLoopback {
		iface = a.configureLoopback(iface, req)
	}

	return iface
}

// configureLoopback은 루프백 인터페이스 설정을 적용합니다.
// IPv6 주소는 의도적으로 붙이지 않습니다.
func (a *ConfigAssembler) configureLoopback(iface entities.InterfaceConfig, req entities.InterfaceRequest) entities.InterfaceConfig {
	return a.AttachIPv4(iface, req.IPv4)
}

// AttachIPv4는 config.address를 addrs로 교체한 새 레코드를 반환합니다.
// 기존 주소 목록에 덧붙이지 않으며 입력 레코드는 변경하지 않습니다.
func (a *ConfigAssembler) AttachIPv4(iface entities.InterfaceConfig, addrs []string) entities.InterfaceConfig {
	out := iface.Clone()

	cfg, ok := out[entities.KeyConfig].(map[string]interface{})
	if !ok {
		cfg = map[string]interface{}{}
		out[entities.KeyConfig] = cfg
	}
	cfg[entities.KeyAddress] = append([]string(nil), addrs...)

	return out
}
