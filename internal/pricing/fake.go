package pricing

// fakeQuotes mirrors the payload shape of the live feed for local runs and
// tests. Offsets are derived from the product id so different detail pages
// show different, stable numbers.
func fakeQuotes(productID string) []Quote {
	base := int64(16500 + int(checksum(productID)%40)*100)
	coupang := base
	kurly := base + 400
	ssg := base + 700
	return []Quote{
		{
			Store:         "쿠팡",
			LogoText:      "CP",
			Price:         &coupang,
			Status:        StatusReady,
			ShippingLabel: "로켓배송",
			UpdatedLabel:  "5분 전",
			URL:           "https://www.coupang.com/",
		},
		{
			Store:        "네이버 쇼핑",
			LogoText:     "N",
			Status:       StatusLoading,
			UpdatedLabel: "방금",
			URL:          "https://shopping.naver.com/",
		},
		{
			Store:         "마켓 컬리",
			LogoText:      "K",
			Price:         &kurly,
			Status:        StatusReady,
			ShippingLabel: "무료배송",
			UpdatedLabel:  "10분 전",
			URL:           "https://www.kurly.com/",
		},
		{
			Store:        "SSG",
			LogoText:     "S",
			Price:        &ssg,
			Status:       StatusReady,
			UpdatedLabel: "30분 전",
			URL:          "https://www.ssg.com/",
		},
	}
}

func checksum(s string) uint32 {
	var sum uint32
	for _, r := range s {
		sum = sum*31 + uint32(r)
	}
	return sum
}
