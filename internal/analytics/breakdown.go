package analytics

import (
	"math"

	"assetboard/internal/models"
)

const (
	// DemotionThreshold is the share of the total below which a group is
	// folded into Other. It is fixed regardless of how many groups exist.
	DemotionThreshold = 0.05

	// OtherName names the node holding every demoted group.
	OtherName = "Other"
)

type group struct {
	name      string
	magnitude float64
	members   []*models.AssetRecord
}

// BuildBreakdown groups records by key and sizes every group by the sum
// of absolute metric values. Groups holding less than DemotionThreshold
// of the total are dropped from the tree and their magnitude goes to a
// single childless Other node appended after the surviving groups.
//
// Leaves are tagged gain when the record's contribution is zero or more,
// loss otherwise. Groups are tagged group and Other is tagged neutral.
func BuildBreakdown(records []models.AssetRecord, key GroupKey, metric Metric) GroupNode {
	var (
		groups []*group
		index  = make(map[string]*group)
		total  float64
	)
	for i := range records {
		r := &records[i]
		mag := math.Abs(metric.value(r))
		total += mag

		label := key.of(r)
		g, ok := index[label]
		if !ok {
			g = &group{name: label}
			index[label] = g
			groups = append(groups, g)
		}
		g.magnitude += mag
		g.members = append(g.members, r)
	}

	root := GroupNode{
		Name:      key.Label(),
		Magnitude: total,
		Tag:       TagGroup,
		Children:  make([]GroupNode, 0, len(groups)+1),
	}
	if total == 0 {
		return root
	}
	root.Share = 100

	var other float64
	for _, g := range groups {
		if g.magnitude/total < DemotionThreshold {
			other += g.magnitude
			continue
		}

		node := GroupNode{
			Name:      g.name,
			Magnitude: g.magnitude,
			Share:     g.magnitude / total * 100,
			Tag:       TagGroup,
			Children:  make([]GroupNode, 0, len(g.members)),
		}
		for _, r := range g.members {
			mag := math.Abs(metric.value(r))
			if mag == 0 {
				continue
			}
			tag := TagGain
			if r.Contribution < 0 {
				tag = TagLoss
			}
			node.Children = append(node.Children, GroupNode{
				Name:      r.Name,
				Magnitude: mag,
				Share:     mag / total * 100,
				Tag:       tag,
			})
		}
		root.Children = append(root.Children, node)
	}

	if other > 0 {
		root.Children = append(root.Children, GroupNode{
			Name:      OtherName,
			Magnitude: other,
			Share:     other / total * 100,
			Tag:       TagNeutral,
		})
	}
	return root
}
