package domain

import "fmt"

type RoleKind int

const (
	RoleUnknown RoleKind = iota
	RoleNamed
	RoleCoded
)

// StaffRole: 上游的 role 字段可能是字符串、数字或对象，
// 在数据接入时解析一次，之后展示层只处理这个标签化的结果
type StaffRole struct {
	Kind RoleKind `json:"kind"`
	Name string   `json:"name,omitempty"`
	Code string   `json:"code,omitempty"`
}

func ResolveRole(raw any) StaffRole {
	switch v := raw.(type) {
	case nil:
		return StaffRole{Kind: RoleUnknown}
	case string:
		if v == "" {
			return StaffRole{Kind: RoleUnknown}
		}
		return StaffRole{Kind: RoleNamed, Name: v}
	case float64:
		// JSON 数字统一解码为 float64
		return StaffRole{Kind: RoleCoded, Code: fmt.Sprintf("%v", v)}
	case int:
		return StaffRole{Kind: RoleCoded, Code: fmt.Sprintf("%d", v)}
	case map[string]any:
		if name, ok := v["name"].(string); ok && name != "" {
			return StaffRole{Kind: RoleNamed, Name: name}
		}
		if id, ok := v["id"]; ok && id != nil {
			return StaffRole{Kind: RoleCoded, Code: fmt.Sprintf("%v", id)}
		}
		return StaffRole{Kind: RoleUnknown}
	default:
		return StaffRole{Kind: RoleUnknown}
	}
}

func (r StaffRole) String() string {
	switch r.Kind {
	case RoleNamed:
		return r.Name
	case RoleCoded:
		return r.Code
	default:
		return "User"
	}
}
