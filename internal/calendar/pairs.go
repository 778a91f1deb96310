package calendar

import (
	"github.com/pairduty/roster/backend/internal/domain"
)

// 结对高亮使用的 6 色调色板，按发现顺序取模分配，
// 第 7 个及以后的同事会循环复用颜色，这是已接受的设计上限
var pairPalette = []string{
	"#FF0000", // 红
	"#0000FF", // 蓝
	"#00FF00", // 绿
	"#FF00FF", // 品红
	"#FF9900", // 橙
	"#FFFF00", // 黄
}

// pairEdge: 合并后的一条结对边。direct 边来自选中人员自己的 PairList，
// reverse 边来自把选中人员列入 PairList 的其他人员
type pairEdge struct {
	CounterpartID   string
	CounterpartName string
	StartDate       string
	EndDate         string
}

// PairIndex 在加载排班表时构建一次：把单向声明的结对边按双向关系合并，
// 之后每次渲染只要查表，不再对人员列表做双重扫描
type PairIndex struct {
	edges  map[string][]pairEdge        // 选中人员 ID -> 有序边（direct 在前，reverse 在后）
	colors map[string]map[string]string // 选中人员 ID -> 同事 ID -> 颜色
}

func NewPairIndex(schedule *domain.Schedule) *PairIndex {
	idx := &PairIndex{
		edges:  make(map[string][]pairEdge),
		colors: make(map[string]map[string]string),
	}
	if schedule == nil {
		return idx
	}

	for i := range schedule.Staffs {
		selected := &schedule.Staffs[i]
		edges := []pairEdge{}

		// 正向关系：选中人员自己声明的结对，保持 PairList 原始顺序
		for _, pair := range selected.PairList {
			name := "Unknown"
			if counterpart := StaffByID(schedule, pair.StaffID); counterpart != nil {
				name = counterpart.Name
			}
			edges = append(edges, pairEdge{
				CounterpartID:   pair.StaffID,
				CounterpartName: name,
				StartDate:       pair.StartDate,
				EndDate:         pair.EndDate,
			})
		}

		// 反向关系：把选中人员列入 PairList 的其他人员，按人员列表顺序
		for j := range schedule.Staffs {
			declarer := &schedule.Staffs[j]
			if declarer.ID == selected.ID {
				continue
			}
			for _, pair := range declarer.PairList {
				if pair.StaffID != selected.ID {
					continue
				}
				edges = append(edges, pairEdge{
					CounterpartID:   declarer.ID,
					CounterpartName: declarer.Name,
					StartDate:       pair.StartDate,
					EndDate:         pair.EndDate,
				})
			}
		}

		idx.edges[selected.ID] = edges
		idx.colors[selected.ID] = assignPairColors(edges)
	}

	return idx
}

// assignPairColors 按发现顺序给每个同事分配颜色。
// 缺失日期的边也参与发现，这样颜色不会因为个别坏数据而整体偏移
func assignPairColors(edges []pairEdge) map[string]string {
	colors := make(map[string]string)
	counter := 0
	for _, edge := range edges {
		if edge.CounterpartID == "" {
			continue
		}
		if _, exists := colors[edge.CounterpartID]; exists {
			continue
		}
		colors[edge.CounterpartID] = pairPalette[counter%len(pairPalette)]
		counter++
	}
	return colors
}

// PairDays 返回选中人员所有结对日的平铺列表。
// 发射顺序即边的顺序（正向在前），同一天被多段区间覆盖时会出现多条记录，
// 渲染端取第一个匹配作为确定的平局裁决。
// 缺同事 ID 或缺任一日期边界的边会被静默跳过，坏数据不能中断渲染。
func (idx *PairIndex) PairDays(selectedStaffID string) []domain.PairDay {
	pairDays := []domain.PairDay{}
	if selectedStaffID == "" {
		return pairDays
	}

	edges, ok := idx.edges[selectedStaffID]
	if !ok {
		return pairDays
	}
	colors := idx.colors[selectedStaffID]

	for _, edge := range edges {
		if edge.CounterpartID == "" || edge.StartDate == "" || edge.EndDate == "" {
			continue
		}
		start, ok := ParseISODate(edge.StartDate)
		if !ok {
			continue
		}
		end, ok := ParseISODate(edge.EndDate)
		if !ok {
			continue
		}

		color := colors[edge.CounterpartID]
		if color == "" {
			color = pairPalette[0]
		}

		for _, date := range DatesBetween(start, end) {
			pairDays = append(pairDays, domain.PairDay{
				Date:      date,
				Color:     color,
				StaffID:   edge.CounterpartID,
				StaffName: edge.CounterpartName,
			})
		}
	}

	return pairDays
}
