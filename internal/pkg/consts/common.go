package consts

import "time"

const (
	// PostsPerPage 列表页固定页大小
	PostsPerPage = 10

	// IndexCacheTTL 首页列表缓存时长，过期前写入不可见
	IndexCacheTTL = 20 * time.Second
)

const (
	MimePrefixImage = "image"

	// ThumbSuffix 缩略图对象名后缀，跟随原图一起创建和删除
	ThumbSuffix = "_thumb.jpg"
)
