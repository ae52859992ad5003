package enums

// 房源相关的枚举均以字符串存储，取值与前端表单保持一致。

type HouseType string

const (
	HouseTypeLandPlot   HouseType = "LandPlot"
	HouseTypeDeveloper  HouseType = "Developer"
	HouseTypeSecondary  HouseType = "Secondary"
	HouseTypeCommercial HouseType = "Commercial"
)

func (v HouseType) IsValid() bool {
	switch v {
	case HouseTypeLandPlot, HouseTypeDeveloper, HouseTypeSecondary, HouseTypeCommercial:
		return true
	}
	return false
}

type LandCategory string

const (
	LandCategoryIZHS         LandCategory = "IZHS"
	LandCategorySNT          LandCategory = "SNT"
	LandCategoryDNT          LandCategory = "DNT"
	LandCategoryAgricultural LandCategory = "Agricultural"
	LandCategoryOther        LandCategory = "Other"
)

func (v LandCategory) IsValid() bool {
	switch v {
	case LandCategoryIZHS, LandCategorySNT, LandCategoryDNT, LandCategoryAgricultural, LandCategoryOther:
		return true
	}
	return false
}

type Finishing string

const (
	FinishingClean    Finishing = "CleanFinish"
	FinishingPreClean Finishing = "PreCleanFinish"
	FinishingRough    Finishing = "RoughFinish"
)

func (v Finishing) IsValid() bool {
	switch v {
	case FinishingClean, FinishingPreClean, FinishingRough:
		return true
	}
	return false
}

type Heating string

const (
	HeatingGas         Heating = "Gas"
	HeatingElectricity Heating = "Electricity"
	HeatingOther       Heating = "Other"
)

func (v Heating) IsValid() bool {
	switch v {
	case HeatingGas, HeatingElectricity, HeatingOther:
		return true
	}
	return false
}

type FloorCount string

const (
	FloorOne   FloorCount = "One"
	FloorTwo   FloorCount = "Two"
	FloorThree FloorCount = "Three"
)

func (v FloorCount) IsValid() bool {
	switch v {
	case FloorOne, FloorTwo, FloorThree:
		return true
	}
	return false
}

type BedroomCount string

const (
	BedroomOne   BedroomCount = "One"
	BedroomTwo   BedroomCount = "Two"
	BedroomThree BedroomCount = "Three"
	BedroomFour  BedroomCount = "Four"
	BedroomFive  BedroomCount = "Five"
)

func (v BedroomCount) IsValid() bool {
	switch v {
	case BedroomOne, BedroomTwo, BedroomThree, BedroomFour, BedroomFive:
		return true
	}
	return false
}

type BathroomCount string

const (
	BathroomOne  BathroomCount = "One"
	BathroomTwo  BathroomCount = "Two"
	BathroomMore BathroomCount = "More"
)

func (v BathroomCount) IsValid() bool {
	switch v {
	case BathroomOne, BathroomTwo, BathroomMore:
		return true
	}
	return false
}

type FacingMaterial string

const (
	FacingBarkBeetlePlaster FacingMaterial = "BarkBeetlePlaster"
	FacingBrick             FacingMaterial = "Brick"
	FacingSiding            FacingMaterial = "Siding"
	FacingOther             FacingMaterial = "Other"
)

func (v FacingMaterial) IsValid() bool {
	switch v {
	case FacingBarkBeetlePlaster, FacingBrick, FacingSiding, FacingOther:
		return true
	}
	return false
}

type WallMaterial string

const (
	WallWood            WallMaterial = "Wood"
	WallBrick           WallMaterial = "Brick"
	WallExpandedClay    WallMaterial = "ExpandedClay"
	WallAeratedConcrete WallMaterial = "AeratedConcrete"
	WallOther           WallMaterial = "Other"
)

func (v WallMaterial) IsValid() bool {
	switch v {
	case WallWood, WallBrick, WallExpandedClay, WallAeratedConcrete, WallOther:
		return true
	}
	return false
}

type Insulation string

const (
	InsulationFoamPlastic Insulation = "FoamPlastic"
	InsulationMineralWool Insulation = "MineralWool"
	InsulationOther       Insulation = "Other"
)

func (v Insulation) IsValid() bool {
	switch v {
	case InsulationFoamPlastic, InsulationMineralWool, InsulationOther:
		return true
	}
	return false
}

type HouseStatus string

const (
	HouseStatusBuilt             HouseStatus = "BuiltHouse"
	HouseStatusUnderConstruction HouseStatus = "UnderConstruction"
	HouseStatusLandPlot          HouseStatus = "LandPlot"
)

func (v HouseStatus) IsValid() bool {
	switch v {
	case HouseStatusBuilt, HouseStatusUnderConstruction, HouseStatusLandPlot:
		return true
	}
	return false
}

type SaleStatus string

const (
	SaleStatusAvailable SaleStatus = "Available"
	SaleStatusReserved  SaleStatus = "Reserved"
	SaleStatusSold      SaleStatus = "Sold"
)

func (v SaleStatus) IsValid() bool {
	switch v {
	case SaleStatusAvailable, SaleStatusReserved, SaleStatusSold:
		return true
	}
	return false
}
