package logic

import (
	"amur-data-api/internal/pairs"
	"amur-data-api/internal/types"
)

const (
	typePair  = "pair"
	typeList  = "list"
	typeError = "error"
)

// toPairData shapes normalised statistics for the wire: decimals render as
// strings, the reference volume collapses to null when unknown.
func toPairData(info *pairs.PairInfo) *types.PairData {
	data := &types.PairData{
		FirstPrice: info.FirstPrice.String(),
		LastPrice:  info.LastPrice.String(),
		Volume:     info.Volume.String(),
	}
	if info.VolumeAmur.Valid {
		s := info.VolumeAmur.Decimal.String()
		data.VolumeAmur = &s
	}
	return data
}

func pairEntry(info *pairs.PairInfo) types.PairEntry {
	entry := types.PairEntry{Type: typePair}
	if info != nil {
		entry.Data = toPairData(info)
	}
	return entry
}

func errorEntry(message string) types.PairEntry {
	return types.PairEntry{Type: typeError, Message: message}
}
