package entities

import "strings"

// InterfaceRequest는 호스트 엔진이 전달한 인터페이스 설정 요청입니다
type InterfaceRequest struct {
	Name          string
	BridgeMembers []string // e.g. ["swp1-10.100", "swp11"]
	BondMembers   []string
	IPv4          []string // CIDR 표기 (e.g. "10.1.1.1/24"), 형식은 검증하지 않음
	IPv6          []string // 받아들이지만 하위 단계에서는 사용하지 않음
}

// HasBridgeMembers는 브리지 멤버가 지정되었는지 확인합니다
func (r InterfaceRequest) HasBridgeMembers() bool {
	return len(r.BridgeMembers) > 0
}

// HasBondMembers는 본드 멤버가 지정되었는지 확인합니다
func (r InterfaceRequest) HasBondMembers() bool {
	return len(r.BondMembers) > 0
}

// InterfaceType은 요청으로부터 도출된 인터페이스 종류입니다
type InterfaceType string

const (
	InterfaceTypeBridge   InterfaceType = "bridge"
	InterfaceTypeBond     InterfaceType = "bond"
	InterfaceTypeLoopback InterfaceType = "loopback"
	InterfaceTypeMgmt     InterfaceType = "mgmt"
	InterfaceTypeSwp      InterfaceType = "swp"
)

// InterfaceTypes는 모든 인터페이스 타입을 분류 우선순위 순서로 반환합니다
func InterfaceTypes() []InterfaceType {
	return []InterfaceType{
		InterfaceTypeBridge,
		InterfaceTypeBond,
		InterfaceTypeLoopback,
		InterfaceTypeMgmt,
		InterfaceTypeSwp,
	}
}

// String은 인터페이스 타입의 문자열 표현을 반환합니다
func (t InterfaceType) String() string {
	return string(t)
}

// IsValid는 알려진 인터페이스 타입인지 확인합니다
func (t InterfaceType) IsValid() bool {
	for _, known := range InterfaceTypes() {
		if t == known {
			return true
		}
	}
	return false
}

// InterfaceConfig 레코드의 키
const (
	KeyInterfaceType = "ifacetype"
	KeyConfig        = "config"
	KeyAddress       = "address"
)

// InterfaceConfig는 인터페이스 타입 태그와 선택적인 config 매핑을 담는 출력 레코드입니다.
//
//	{"ifacetype": "loopback", "config": {"address": ["10.1.1.1/24"]}}
type InterfaceConfig map[string]interface{}

// NewInterfaceConfig는 타입 태그만 가진 레코드를 생성합니다
func NewInterfaceConfig(ifaceType InterfaceType) InterfaceConfig {
	return InterfaceConfig{KeyInterfaceType: ifaceType.String()}
}

// InterfaceType은 레코드에 기록된 인터페이스 타입을 반환합니다
func (c InterfaceConfig) InterfaceType() InterfaceType {
	if v, ok := c[KeyInterfaceType].(string); ok {
		return InterfaceType(v)
	}
	return ""
}

// Addresses는 config.address에 기록된 주소 목록을 반환합니다
func (c InterfaceConfig) Addresses() []string {
	cfg, ok := c[KeyConfig].(map[string]interface{})
	if !ok {
		return nil
	}
	addrs, _ := cfg[KeyAddress].([]string)
	return addrs
}

// Clone은 최상위와 config 매핑을 복사한 새 레코드를 반환합니다
func (c InterfaceConfig) Clone() InterfaceConfig {
	out := make(InterfaceConfig, len(c))
	for k, v := range c {
		if nested, ok := v.(map[string]interface{}); ok {
			copied := make(map[string]interface{}, len(nested))
			for nk, nv := range nested {
				copied[nk] = nv
			}
			v = copied
		}
		out[k] = v
	}
	return out
}

// IsManagementName은 이름이 관리 네트워크 인터페이스 접두사를 갖는지 확인합니다
func IsManagementName(name string) bool {
	return strings.HasPrefix(name, "eth")
}

// IsSwitchPortName은 이름이 전면 패널 스위치 포트 접두사를 갖는지 확인합니다
func IsSwitchPortName(name string) bool {
	return strings.HasPrefix(name, "swp")
}

// IsLoopbackName은 루프백 인터페이스 이름인지 확인합니다
func IsLoopbackName(name string) bool {
	return name == "lo"
}
