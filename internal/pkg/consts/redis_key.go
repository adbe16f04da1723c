package consts

const (
	// PostIndexPrefix 首页列表缓存前缀，Flush 时按前缀清空
	PostIndexPrefix = "post:index:"
	// PostIndexPageKey 首页列表缓存键，后接页码
	PostIndexPageKey = "post:index:page:"

	// MediaTempKey 已上传未挂载的图片元数据 Hash
	MediaTempKey = "media:temp"

	// TokenBlacklistKey 已注销 Token 签名前缀
	TokenBlacklistKey = "token:blacklist:"
)
