package services

import (
	"testing"

	"cl-interface/internal/domain/entities"

	"github.com/stretchr/testify/assert"
)

func TestConfigAssembler_AttachIPv4(t *testing.T) {
	tests := []struct {
		name     string
		iface    entities.InterfaceConfig
		addrs    []string
		expected entities.InterfaceConfig
	}{
		{
			name:  "빈 레코드에 주소 추가",
			iface: entities.InterfaceConfig{},
			addrs: []string{"10.1.1.1/24"},
			expected: entities.InterfaceConfig{
				"config": map[string]interface{}{"address": []string{"10.1.1.1/24"}},
			},
		},
		{
			name: "기존 주소는 덧붙이지 않고 교체",
			iface: entities.InterfaceConfig{
				"config": map[string]interface{}{"address": []string{"old"}},
			},
			addrs: []string{"10.1.1.1/24"},
			expected: entities.InterfaceConfig{
				"config": map[string]interface{}{"address": []string{"10.1.1.1/24"}},
			},
		},
		{
			name: "config의 다른 키는 유지",
			iface: entities.InterfaceConfig{
				"ifacetype": "loopback",
				"config":    map[string]interface{}{"mtu": 9000},
			},
			addrs: []string{"10.1.1.1/24", "20.1.1.1/24"},
			expected: entities.InterfaceConfig{
				"ifacetype": "loopback",
				"config": map[string]interface{}{
					"mtu":     9000,
					"address": []string{"10.1.1.1/24", "20.1.1.1/24"},
				},
			},
		},
		{
			name:  "매핑이 아닌 config 값은 새 매핑으로 교체",
			iface: entities.InterfaceConfig{"config": "garbage"},
			addrs: []string{"10.1.1.1/24"},
			expected: entities.InterfaceConfig{
				"config": map[string]interface{}{"address": []string{"10.1.1.1/24"}},
			},
		},
		{
			name:  "빈 주소 목록",
			iface: entities.InterfaceConfig{},
			addrs: nil,
			expected: entities.InterfaceConfig{
				"config": map[string]interface{}{"address": []string(nil)},
			},
		},
	}

	assembler := NewConfigAssembler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assembler.AttachIPv4(tt.iface, tt.addrs))
		})
	}
}

func TestConfigAssembler_AttachIPv4_LastWriteWins(t *testing.T) {
	assembler := NewConfigAssembler()

	iface := assembler.AttachIPv4(entities.InterfaceConfig{}, []string{"10.1.1.1/24"})
	iface = assembler.AttachIPv4(iface, []string{"20.1.1.1/24"})

	assert.Equal(t, []string{"20.1.1.1/24"}, iface.Addresses())
}

func TestConfigAssembler_AttachIPv4_DoesNotMutateInput(t *testing.T) {
	assembler := NewConfigAssembler()
	original := entities.InterfaceConfig{
		"config": map[string]interface{}{"address": []string{"old"}},
	}
	addrs := []string{"10.1.1.1/24"}

	result := assembler.AttachIPv4(original, addrs)
	addrs[0] = "changed"

	assert.Equal(t, []string{"old"}, original.Addresses())
	assert.Equal(t, []string{"10.1.1.1/24"}, result.Addresses())
}

func TestConfigAssembler_Assemble(t *testing.T) {
	tests := []struct {
		name      string
		ifaceType entities.InterfaceType
		request   entities.InterfaceRequest
		expected  entities.InterfaceConfig
	}{
		{
			name:      "루프백은 IPv4 주소를 붙임",
			ifaceType: entities.InterfaceTypeLoopback,
			request:   entities.InterfaceRequest{Name: "lo", IPv4: []string{"10.1.1.1/32"}},
			expected: entities.InterfaceConfig{
				"ifacetype": "loopback",
				"config":    map[string]interface{}{"address": []string{"10.1.1.1/32"}},
			},
		},
		{
			name:      "루프백 IPv6 주소는 붙이지 않음",
			ifaceType: entities.InterfaceTypeLoopback,
			request:   entities.InterfaceRequest{Name: "lo", IPv6: []string{"2001:db8::1/128"}},
			expected: entities.InterfaceConfig{
				"ifacetype": "loopback",
				"config":    map[string]interface{}{"address": []string(nil)},
			},
		},
		{
			name:      "브리지는 조립하지 않음",
			ifaceType: entities.InterfaceTypeBridge,
			request:   entities.InterfaceRequest{Name: "br0", BridgeMembers: []string{"swp1-10.100", "swp11"}},
			expected:  entities.InterfaceConfig{"ifacetype": "bridge"},
		},
		{
			name:      "swp는 IPv4가 있어도 조립하지 않음",
			ifaceType: entities.InterfaceTypeSwp,
			request:   entities.InterfaceRequest{Name: "swp1", IPv4: []string{"10.1.1.1/24"}},
			expected:  entities.InterfaceConfig{"ifacetype": "swp"},
		},
	}

	assembler := NewConfigAssembler()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, assembler.Assemble(tt.ifaceType, tt.request))
		})
	}
}
