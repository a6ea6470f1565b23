package services

import (
	"cl-interface/internal/domain/entities"
	"cl-interface/internal/domain/errors"
)

// classificationRule은 요청이 특정 인터페이스 타입에 해당하는지 판단하는 규칙입니다
type classificationRule struct {
	ifaceType entities.InterfaceType
	matches   func(req entities.InterfaceRequest) bool
}

// InterfaceClassifier는 인터페이스 설정 요청을 정확히 하나의 인터페이스 타입으로 분류하는 도메인 서비스입니다
type InterfaceClassifier struct {
	rules []classificationRule
}

// NewInterfaceClassifier는 새로운 InterfaceClassifier를 생성합니다.
// 규칙은 우선순위 순서로 평가되며 처음 일치한 규칙이 결과가 됩니다.
func NewInterfaceClassifier() *InterfaceClassifier {
	return &InterfaceClassifier{
		rules: []classificationRule{
			{
				ifaceType: entities.InterfaceTypeBridge,
				matches:   entities.InterfaceRequest.HasBridgeMembers,
			},
			{
				ifaceType: entities.InterfaceTypeBond,
				matches:   entities.InterfaceRequest.HasBondMembers,
			},
			{
				ifaceType: entities.InterfaceTypeLoopback,
				matches:   func(req entities.InterfaceRequest) bool { return entities.IsLoopbackName(req.Name) },
			},
			{
				ifaceType: entities.InterfaceTypeMgmt,
				matches:   func(req entities.InterfaceRequest) bool { return entities.IsManagementName(req.Name) },
			},
			{
				ifaceType: entities.InterfaceTypeSwp,
				matches:   func(req entities.InterfaceRequest) bool { return entities.IsSwitchPortName(req.Name) },
			},
		},
	}
}

// Classify는 요청의 인터페이스 타입을 결정합니다.
// 어떤 규칙에도 맞지 않으면 인터페이스 이름을 담은 분류 실패 에러를 반환합니다.
func (c *InterfaceClassifier) Classify(req entities.InterfaceRequest) (entities.InterfaceType, error) {
	for _, rule := range c.rules {
		if rule.matches(req) {
			return rule.ifaceType, nil
		}
	}
	return "", errors.NewUnclassifiableInterfaceError(req.Name)
}
