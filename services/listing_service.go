// file: services/listing_service.go
package services

import (
	"strconv"
	"strings"

	"github.com/Julius10-hub/UEB/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const defaultPerPage = 20

type ListQuery struct {
	Page    int
	PerPage int
}

// ParseListQuery 解析 page/per_page，分页从 1 开始，默认每页 20 条
func ParseListQuery(c *gin.Context) ListQuery {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	perPage, err := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(defaultPerPage)))
	if err != nil || perPage < 1 {
		perPage = defaultPerPage
	}
	return ListQuery{Page: page, PerPage: perPage}
}

// FilterSpec 声明一种资源支持的查询参数到数据库列的映射，
// 各资源控制器用它代替逐参数的手写查询拼接
type FilterSpec struct {
	// Equal: 查询参数 -> 等值过滤的列
	Equal map[string]string
	// Substring: 查询参数 -> 大小写不敏感子串过滤的列
	Substring map[string]string
	// Flags: 查询参数 -> 布尔列，参数值为 "true" 时过滤该列为真
	Flags map[string]string
}

// Apply 把请求里出现的过滤参数逐个叠加到查询上
func (f FilterSpec) Apply(c *gin.Context, tx *gorm.DB) *gorm.DB {
	for param, column := range f.Equal {
		if v := c.Query(param); v != "" {
			tx = tx.Where(column+" = ?", v)
		}
	}
	for param, column := range f.Substring {
		if v := c.Query(param); v != "" {
			tx = tx.Where("LOWER("+column+") LIKE ?", "%"+strings.ToLower(v)+"%")
		}
	}
	for param, column := range f.Flags {
		if c.Query(param) == "true" {
			tx = tx.Where(column+" = ?", true)
		}
	}
	return tx
}

// Paginate 对已经带好过滤条件的查询做统计加分页，再投影成响应结构。
// 超出范围的页码返回空列表与真实的 total/pages，不报错。
func Paginate[M any, R any](tx *gorm.DB, q ListQuery, project func(*M) R) ([]R, int64, int, error) {
	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, 0, 0, err
	}

	var records []M
	offset := (q.Page - 1) * q.PerPage
	if err := tx.Offset(offset).Limit(q.PerPage).Find(&records).Error; err != nil {
		return nil, 0, 0, err
	}

	items := make([]R, len(records))
	for i := range records {
		items[i] = project(&records[i])
	}

	return items, total, utils.TotalPages(total, q.PerPage), nil
}
