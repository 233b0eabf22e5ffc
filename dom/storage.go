package dom

import (
	"errors"
	"fmt"

	"github.com/nmxmxh/navcaps/utils"
)

// StorageProbeKey is written and immediately removed to test a store.
const StorageProbeKey = "__storage_test__"

// Quota-exceeded signatures across engines. Firefox uses its own code and
// name; the name check covers engines that leave code unset.
const (
	quotaExceededCode       = 22
	firefoxQuotaReachedCode = 1014
	quotaExceededName       = "QuotaExceededError"
	firefoxQuotaReachedName = "NS_ERROR_DOM_QUOTA_REACHED"
)

// DOMException is the error shape browsers raise from Web Storage calls.
type DOMException struct {
	Name    string
	Code    int
	Message string
}

func (e *DOMException) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("%s (code %d)", e.Name, e.Code)
	}
	return fmt.Sprintf("%s (code %d): %s", e.Name, e.Code, e.Message)
}

// IsQuotaExceeded reports whether err is a DOMException carrying one of the
// known quota-exceeded signatures.
func IsQuotaExceeded(err error) bool {
	var ex *DOMException
	if !errors.As(err, &ex) {
		return false
	}
	return ex.Code == quotaExceededCode ||
		ex.Code == firefoxQuotaReachedCode ||
		ex.Name == quotaExceededName ||
		ex.Name == firefoxQuotaReachedName
}

// StorageAvailable reports whether the named store accepts a write and a
// delete. A quota error still counts as available when the store already
// holds entries; on an empty store it means storage is disabled (Safari
// private browsing, for instance).
func StorageAvailable(w Window, kind StorageKind) bool {
	store, err := w.Storage(kind)
	if err != nil {
		utils.Debug("storage unreachable", utils.String("kind", string(kind)), utils.Err(err))
		return false
	}
	if store == nil {
		return false
	}

	err = probeStore(store)
	if err == nil {
		return true
	}

	available := IsQuotaExceeded(err) && store.Len() != 0
	utils.Debug("storage probe failed",
		utils.String("kind", string(kind)),
		utils.Bool("available", available),
		utils.Err(err),
	)
	return available
}

func probeStore(store Store) error {
	if err := store.SetItem(StorageProbeKey, StorageProbeKey); err != nil {
		return err
	}
	return store.RemoveItem(StorageProbeKey)
}
