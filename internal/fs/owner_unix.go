//go:build !windows

package fs

import (
	"os"
	"os/user"
	"strconv"
	"syscall"
)

// ownerResolver caches uid/gid lookups for the duration of one listing pass.
type ownerResolver struct {
	users  map[uint32]string
	groups map[uint32]string
}

func newOwnerResolver() *ownerResolver {
	return &ownerResolver{
		users:  make(map[uint32]string),
		groups: make(map[uint32]string),
	}
}

func (r *ownerResolver) resolve(info os.FileInfo) (string, string) {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return "", ""
	}
	return r.user(stat.Uid), r.group(stat.Gid)
}

func (r *ownerResolver) user(uid uint32) string {
	if name, ok := r.users[uid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(uid), 10)
	name := id
	if u, err := user.LookupId(id); err == nil {
		name = u.Username
	}
	r.users[uid] = name
	return name
}

func (r *ownerResolver) group(gid uint32) string {
	if name, ok := r.groups[gid]; ok {
		return name
	}
	id := strconv.FormatUint(uint64(gid), 10)
	name := id
	if g, err := user.LookupGroupId(id); err == nil {
		name = g.Name
	}
	r.groups[gid] = name
	return name
}
